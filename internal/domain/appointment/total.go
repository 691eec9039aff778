package appointment

import "github.com/VidaPediatria/clinic-api/internal/models"

// Total é sempre derivado da soma dos preços base dos serviços
// vinculados. Nunca é armazenado nem congelado no momento da reserva.
func Total(services []models.Service) float64 {
	var total float64
	for _, s := range services {
		total += s.BasePrice
	}
	return total
}

// TotalForLines soma a partir das linhas do join já carregadas.
func TotalForLines(lines []models.AppointmentService) float64 {
	var total float64
	for _, l := range lines {
		total += l.Service.BasePrice
	}
	return total
}
