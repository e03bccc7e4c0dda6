package v1

import (
	"net/http"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CountryHandler struct {
	countryUC domain.CountryUsecase
}

func NewCountryHandler(public *gin.RouterGroup, countryUC domain.CountryUsecase) {
	handler := &CountryHandler{
		countryUC: countryUC,
	}

	public.GET("/countries", handler.ListCountries)
}

// ListCountries godoc
// @Summary      List Countries
// @Description  List all countries with dial codes, ordered by name
// @Tags         countries
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /countries [get]
func (h *CountryHandler) ListCountries(c *gin.Context) {
	countries, err := h.countryUC.ListCountries(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Countries", countries)
}
