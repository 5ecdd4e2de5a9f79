package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openaquifer/groundwater-api/wqi"
)

type predictRequest struct {
	PH  *float64 `json:"pH" binding:"required"`
	EC  *float64 `json:"EC" binding:"required"`
	TDS *float64 `json:"TDS" binding:"required"`
	TH  *float64 `json:"TH" binding:"required"`
	Ca  *float64 `json:"Ca" binding:"required"`
	Mg  *float64 `json:"Mg" binding:"required"`
	Na  *float64 `json:"Na" binding:"required"`
	K   *float64 `json:"K" binding:"required"`
	Cl  *float64 `json:"Cl" binding:"required"`
	SO4 *float64 `json:"SO4" binding:"required"`
	NO3 *float64 `json:"NO3" binding:"required"`
	F   *float64 `json:"F" binding:"required"`

	// implicit context for the inference; defaults match the national view
	Year      int     `json:"year"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type predictResponse struct {
	PredictedTDS    float64           `json:"predicted_tds"`
	WQI             float64           `json:"wqi"`
	RiskCategory    string            `json:"risk_category"`
	Potable         bool              `json:"potable"`
	SafeForUse      bool              `json:"safe_for_use"`
	Recommendations []string          `json:"recommendations"`
	ParameterStatus map[string]string `json:"parameter_status"`
}

// predict evaluates one set of chemical parameters and returns the derived
// quality assessment. A WQI above 100 always reports non-potable and unsafe,
// whatever the individual parameter checks say.
func (s *Server) predict(c *gin.Context) {
	var req predictRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	params := wqi.Params{
		PH:  *req.PH,
		EC:  *req.EC,
		TDS: *req.TDS,
		TH:  *req.TH,
		Ca:  *req.Ca,
		Mg:  *req.Mg,
		Na:  *req.Na,
		K:   *req.K,
		Cl:  *req.Cl,
		SO4: *req.SO4,
		NO3: *req.NO3,
		F:   *req.F,
	}

	if params.PH < 0 || params.PH > 14 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	index := wqi.Calculate(params)

	potable := wqi.Potable(params)
	safeForUse := wqi.SafeForUse(index)
	if index > 100 {
		potable = false
		safeForUse = false
	}

	c.JSON(http.StatusOK, predictResponse{
		PredictedTDS:    params.TDS,
		WQI:             index,
		RiskCategory:    string(wqi.Classify(index)),
		Potable:         potable,
		SafeForUse:      safeForUse,
		Recommendations: wqi.Recommendations(params, index),
		ParameterStatus: wqi.ParameterStatus(params),
	})
}
