package v1

import (
	"net/http"
	"strconv"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(public *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{
		educationUC: educationUC,
	}

	public.POST("/add_education", handler.AddEducation)
	public.GET("/get_educations/:user_id", handler.GetEducationsByUser)
}

// AddEducation godoc
// @Summary      Add Education
// @Description  Add an education entry for a user. The institution is resolved by name and created when missing.
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        education  body      domain.CreateEducationInput  true  "Education details"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /add_education [post]
func (h *EducationHandler) AddEducation(c *gin.Context) {
	var req domain.CreateEducationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	education, err := h.educationUC.AddEducation(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education added successfully", education)
}

// GetEducationsByUser godoc
// @Summary      List User Educations
// @Description  List a user's education entries with their institutions
// @Tags         educations
// @Produce      json
// @Param        user_id  path      int  true  "User ID"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /get_educations/{user_id} [get]
func (h *EducationHandler) GetEducationsByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user id"))
		return
	}

	educations, err := h.educationUC.GetEducationsByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User educations", educations)
}
