package v1

import (
	"net/http"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// ClientHandler defines the interface for the caller's own addresses and profile
type ClientHandler interface {
	ListAddresses(ctx *gin.Context)
	CreateAddress(ctx *gin.Context)
	UpdateAddress(ctx *gin.Context)
	DeleteAddress(ctx *gin.Context)
	GetProfile(ctx *gin.Context)
	SaveProfile(ctx *gin.Context)
}

type clientHandler struct {
	addressService catalog.AddressService
	profileService catalog.ProfileService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(addressService catalog.AddressService, profileService catalog.ProfileService) ClientHandler {
	return &clientHandler{addressService: addressService, profileService: profileService}
}

// ListAddresses fetches the caller's addresses, default first
// @Summary List my addresses
// @Tags Client
// @Produce json
// @Success 200 {array} ClientAddressResponse
// @Router /client/addresses [get]
func (handler *clientHandler) ListAddresses(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	list, err := handler.addressService.List(ctx.Request.Context(), caller.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ClientAddressResponse, 0, len(list))
	for _, a := range list {
		response = append(response, newClientAddressResponse(a))
	}
	ctx.JSON(http.StatusOK, response)
}

// CreateAddress saves a new address for the caller
// @Summary Add an address
// @Description The market serving the address is inferred from its country.
// @Tags Client
// @Accept json
// @Produce json
// @Param address body SaveAddressRequest true "Address"
// @Success 201 {object} ClientAddressResponse
// @Failure 400 {object} ErrorResponse
// @Router /client/addresses [post]
func (handler *clientHandler) CreateAddress(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	var request SaveAddressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	address, err := handler.addressService.Create(ctx.Request.Context(), caller.UserID, request.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newClientAddressResponse(address))
}

// UpdateAddress replaces one of the caller's addresses
func (handler *clientHandler) UpdateAddress(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	var request SaveAddressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	address, err := handler.addressService.Update(ctx.Request.Context(), ctx.Param("id"), caller.UserID, request.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newClientAddressResponse(address))
}

// DeleteAddress removes one of the caller's addresses
func (handler *clientHandler) DeleteAddress(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	if err := handler.addressService.Delete(ctx.Request.Context(), ctx.Param("id"), caller.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetProfile fetches the caller's profile
// @Summary Get my profile
// @Tags Client
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /client/profile [get]
func (handler *clientHandler) GetProfile(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	profile, err := handler.profileService.Get(ctx.Request.Context(), caller.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// SaveProfile creates the caller's profile on first save, or updates it
// @Summary Save my profile
// @Tags Client
// @Accept json
// @Produce json
// @Param profile body SaveProfileRequest true "Profile"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Router /client/profile [put]
func (handler *clientHandler) SaveProfile(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	var request SaveProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	profile, err := handler.profileService.Upsert(ctx.Request.Context(), &catalog.ProfileInput{
		UserID:           caller.UserID,
		Email:            caller.Email,
		FirstName:        request.FirstName,
		LastName:         request.LastName,
		Phone:            request.Phone,
		SMSNotifications: request.SMSNotifications,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}
