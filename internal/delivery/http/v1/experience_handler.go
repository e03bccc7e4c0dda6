package v1

import (
	"net/http"
	"strconv"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(public *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{
		experienceUC: experienceUC,
	}

	public.POST("/add_experience", handler.AddExperience)
	public.GET("/experiences/:profile_id", handler.GetExperiencesByProfile)
}

// AddExperience godoc
// @Summary      Add Job Experience
// @Description  Add a job experience to a profile. A missing end_date marks the position as current.
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        experience  body      domain.CreateExperienceInput  true  "Experience details"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /add_experience [post]
func (h *ExperienceHandler) AddExperience(c *gin.Context) {
	var req domain.CreateExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	experience, err := h.experienceUC.AddExperience(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added successfully", experience)
}

// GetExperiencesByProfile godoc
// @Summary      List Profile Experiences
// @Description  List a profile's job experiences, most recent first
// @Tags         experiences
// @Produce      json
// @Param        profile_id  path      int  true  "Profile ID"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /experiences/{profile_id} [get]
func (h *ExperienceHandler) GetExperiencesByProfile(c *gin.Context) {
	profileID, err := strconv.ParseInt(c.Param("profile_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid profile id"))
		return
	}

	experiences, err := h.experienceUC.GetExperiencesByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile experiences", experiences)
}
