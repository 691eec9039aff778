package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	"github.com/VidaPediatria/clinic-api/internal/cache"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/httpresp"
	"github.com/VidaPediatria/clinic-api/internal/middleware"
	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/validators"
)

const inviteTTL = 72 * time.Hour

var allowedRoles = map[string]struct{}{
	"admin":          {},
	"doctor":         {},
	"receptionist":   {},
	"lab_technician": {},
}

// Operações privilegiadas de contas. Todas as rotas (menos o aceite de
// convite) ficam atrás do gate de admin; cada mutação gera auditoria.
type AdminUsersHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewAdminUsersHandler(db *gorm.DB, c *cache.Cache, auditDispatcher *audit.Dispatcher) *AdminUsersHandler {
	return &AdminUsersHandler{db: db, cache: c, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type InviteUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// --------- Handlers ---------

func (h *AdminUsersHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminUsersHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, ok := allowedRoles[req.Role]; !ok {
		httperr.BadRequest(c, "invalid_role", "Papel inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    audit.ActionInsert,
		TableName: "users",
		RecordID:  &user.ID,
		NewData:   map[string]any{"email": user.Email, "role": user.Role},
	})

	c.JSON(http.StatusCreated, user)
}

func (h *AdminUsersHandler) UpdateRole(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, ok := allowedRoles[req.Role]; !ok {
		httperr.BadRequest(c, "invalid_role", "Papel inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	oldRole := user.Role
	user.Role = req.Role

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    audit.ActionUpdate,
		TableName: "users",
		RecordID:  &user.ID,
		OldData:   map[string]any{"role": oldRole},
		NewData:   map[string]any{"role": user.Role},
	})

	c.JSON(http.StatusOK, user)
}

// SetActive desativa (ou reativa) a conta sem apagar o histórico; o
// login recusa contas inativas.
func (h *AdminUsersHandler) SetActive(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if user.ID == actorID && !*req.Active {
		httperr.BadRequest(c, "cannot_deactivate_self", "Não é possível desativar a própria conta.")
		return
	}

	oldActive := user.Active
	user.Active = *req.Active

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    audit.ActionUpdate,
		TableName: "users",
		RecordID:  &user.ID,
		OldData:   map[string]any{"active": oldActive},
		NewData:   map[string]any{"active": user.Active},
	})

	c.JSON(http.StatusOK, user)
}

func (h *AdminUsersHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if user.ID == actorID {
		httperr.BadRequest(c, "cannot_delete_self", "Não é possível excluir a própria conta.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao excluir usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    audit.ActionDelete,
		TableName: "users",
		RecordID:  &user.ID,
		OldData:   map[string]any{"email": user.Email, "role": user.Role},
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Invite gera um token de uso único com validade de 72h, guardado no
// redis. Sem redis configurado o fluxo de convite fica indisponível.
func (h *AdminUsersHandler) Invite(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.cache.Enabled() {
		httperr.Internal(c, "invites_unavailable", "Convites indisponíveis sem redis configurado.")
		return
	}

	var req InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, ok := allowedRoles[req.Role]; !ok {
		httperr.BadRequest(c, "invalid_role", "Papel inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	token := uuid.NewString()

	payload := map[string]string{"email": email, "role": req.Role}
	if err := h.cache.SetJSON(c.Request.Context(), inviteKey(token), payload, inviteTTL); err != nil {
		httperr.Internal(c, "failed_to_store_invite", "Erro ao gerar convite.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &actorID,
		Action:    audit.ActionInsert,
		TableName: "user_invites",
		NewData:   map[string]any{"email": email, "role": req.Role},
	})

	c.JSON(http.StatusCreated, gin.H{
		"token":      token,
		"expires_in": int(inviteTTL.Seconds()),
	})
}

// AcceptInvite é a única rota pública deste handler: consome o token e
// cria a conta com o papel definido no convite.
func (h *AdminUsersHandler) AcceptInvite(c *gin.Context) {
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var payload map[string]string
	hit, err := h.cache.GetJSON(c.Request.Context(), inviteKey(req.Token), &payload)
	if err != nil || !hit {
		httperr.BadRequest(c, "invalid_or_expired_invite", "Convite inválido ou expirado.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", payload["email"]).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        payload["email"],
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         payload["role"],
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	_ = h.cache.Delete(c.Request.Context(), inviteKey(req.Token))

	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    audit.ActionInsert,
		TableName: "users",
		RecordID:  &user.ID,
		NewData:   map[string]any{"email": user.Email, "role": user.Role, "via": "invite"},
	})

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func inviteKey(token string) string {
	return "invite:" + token
}
