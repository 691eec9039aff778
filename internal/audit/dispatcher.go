package audit

import "github.com/rs/zerolog/log"

type Event struct {
	UserID    *uint
	Action    string
	TableName string
	RecordID  *uint
	OldData   any
	NewData   any
}

// Dispatcher grava auditoria fora do caminho da requisição. Fila cheia
// descarta o evento: auditoria nunca derruba a operação.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.TableName,
			ev.RecordID,
			ev.OldData,
			ev.NewData,
		); err != nil {
			log.Error().Err(err).Str("table", ev.TableName).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("table", ev.TableName).Msg("audit queue full, dropping event")
	}
}
