package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-service-api/internal/application/authz"
	"user-service-api/internal/application/ports"
	participantDomain "user-service-api/internal/domain/participant"
	"user-service-api/internal/interface/api/rest/dto/participant"
	"user-service-api/internal/interface/api/rest/middleware"
	"user-service-api/internal/interface/api/rest/validator"
)

type ParticipantController struct {
	participantService ports.ParticipantService
	logger             *zap.Logger
}

func NewParticipantController(
	r *gin.Engine,
	participantService ports.ParticipantService,
	logger *zap.Logger,
	verifier ports.TokenVerifier,
	extractor authz.Extractor,
) *ParticipantController {
	pc := &ParticipantController{
		participantService: participantService,
		logger:             logger,
	}

	authn := middleware.Authenticate(verifier, extractor)
	admin := middleware.RequireAuthority(authz.AuthorityAdmin)

	// open
	r.POST(RouteParticipantsSignup, pc.SignupHandler)

	// self-service
	r.GET(RouteParticipantsOwnProfile, authn, pc.GetOwnProfileHandler)
	r.PUT(RouteParticipantsOwnProfile, authn, pc.UpdateOwnProfileHandler)
	r.PATCH(RouteParticipantsOwnNotification, authn, pc.UpdateOwnNotificationsHandler)

	// any authenticated caller
	r.GET(RouteParticipantPublic, authn, pc.GetPublicProfileHandler)

	// admin only
	r.GET(RouteParticipantsAll, authn, admin, pc.GetParticipantsHandler)
	r.GET(RouteParticipantsByEmail, authn, admin, pc.GetParticipantByEmailHandler)
	r.GET(RouteParticipant, authn, admin, pc.GetParticipantHandler)
	r.PUT(RouteParticipantProfile, authn, admin, pc.UpdateProfileHandler)
	r.PATCH(RouteParticipantNotification, authn, admin, pc.UpdateNotificationsHandler)
	r.PATCH(RouteParticipantStatus, authn, admin, pc.ChangeStatusHandler)

	return pc
}

func (pc *ParticipantController) SignupHandler(c *gin.Context) {
	var req participant.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateParticipantSignup(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := pc.participantService.CreateParticipant(c.Request.Context(), participant.ToDomainSignup(req))
	if err != nil {
		if errors.Is(err, participantDomain.ErrEmailAlreadyUsed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a participant"},
		)
		pc.logger.Error("CreateParticipant() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, participant.ToResponseParticipant(*p))
}

func (pc *ParticipantController) GetParticipantsHandler(c *gin.Context) {
	participants, err := pc.participantService.FindParticipants(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get participants"},
		)
		pc.logger.Error("FindParticipants() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, participant.ResponseData{
		Data: participant.ToResponseParticipants(participants),
	})
}

func (pc *ParticipantController) GetParticipantHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("participant_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "participant_id must be a positive integer"},
		)
		return
	}

	p, err := pc.participantService.FindParticipantByID(c.Request.Context(), participantDomain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a participant"},
		)
		pc.logger.Error("FindParticipantByID() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToAdminResponse(*p))
}

func (pc *ParticipantController) GetParticipantByEmailHandler(c *gin.Context) {
	email := c.Query("email")
	if err := validator.ValidateEmailQuery(email); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	p, err := pc.participantService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a participant"},
		)
		pc.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToResponseParticipant(*p))
}

func (pc *ParticipantController) GetPublicProfileHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("participant_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "participant_id must be a positive integer"},
		)
		return
	}

	p, err := pc.participantService.FindParticipantByID(c.Request.Context(), participantDomain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a participant"},
		)
		pc.logger.Error("FindParticipantByID() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToPublicProfileResponse(*p))
}

func (pc *ParticipantController) GetOwnProfileHandler(c *gin.Context) {
	email := middleware.EmailFromCtx(c)
	if email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token has no email claim"},
		)
		return
	}

	p, err := pc.participantService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a participant"},
		)
		pc.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToProfileResponse(*p))
}

func (pc *ParticipantController) UpdateOwnProfileHandler(c *gin.Context) {
	email := middleware.EmailFromCtx(c)
	if email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token has no email claim"},
		)
		return
	}

	var req participant.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateParticipantProfileUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := pc.participantService.UpdateProfileByEmail(c.Request.Context(), email, participant.ToProfilePatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a participant"},
		)
		pc.logger.Error("UpdateProfileByEmail() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToProfileResponse(*p))
}

func (pc *ParticipantController) UpdateProfileHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("participant_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "participant_id must be a positive integer"},
		)
		return
	}

	var req participant.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateParticipantProfileUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := pc.participantService.UpdateProfile(c.Request.Context(), participantDomain.ID(id), participant.ToProfilePatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a participant"},
		)
		pc.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToAdminResponse(*p))
}

func (pc *ParticipantController) UpdateOwnNotificationsHandler(c *gin.Context) {
	email := middleware.EmailFromCtx(c)
	if email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token has no email claim"},
		)
		return
	}

	var req participant.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	p, err := pc.participantService.UpdateNotificationsByEmail(c.Request.Context(), email, participant.ToNotificationPatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a participant"},
		)
		pc.logger.Error("UpdateNotificationsByEmail() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToProfileResponse(*p))
}

func (pc *ParticipantController) UpdateNotificationsHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("participant_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "participant_id must be a positive integer"},
		)
		return
	}

	var req participant.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	p, err := pc.participantService.UpdateNotifications(c.Request.Context(), participantDomain.ID(id), participant.ToNotificationPatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a participant"},
		)
		pc.logger.Error("UpdateNotifications() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToAdminResponse(*p))
}

func (pc *ParticipantController) ChangeStatusHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("participant_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "participant_id must be a positive integer"},
		)
		return
	}

	var req participant.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	status, ok := participantDomain.ParseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": map[string]string{"status": "status must be one of ACTIVE, SUSPENDED, DELETED"},
		})
		return
	}

	p, err := pc.participantService.ChangeStatus(c.Request.Context(), participantDomain.ID(id), status)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a participant"},
		)
		pc.logger.Error("ChangeStatus() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "participant not found"},
		)
		return
	}

	c.JSON(http.StatusOK, participant.ToAdminResponse(*p))
}
