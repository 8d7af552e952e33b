package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/delivery/http/response"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/usecase"
)

// PetHandler holds dependencies for pet management handlers.
type PetHandler struct {
	uc usecase.PetUsecase
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(uc usecase.PetUsecase) *PetHandler {
	return &PetHandler{uc: uc}
}

// Create handles the pet registration request.
func (h *PetHandler) Create(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	var input usecase.CreatePetInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Pet, "Pet registered.")
}

// Update handles a partial pet update.
func (h *PetHandler) Update(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	petID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdatePetInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet payload")
	}

	output, err := h.uc.Update(c.Request().Context(), user.ID, petID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Pet, "Pet updated.")
}

// Delete removes a pet and all its records.
func (h *PetHandler) Delete(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	petID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, petID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pet removed.")
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidation(map[string]string{
			name: "Must be a valid identifier.",
		})
	}

	return id, nil
}
