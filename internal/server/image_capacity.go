package server

import (
	"bytes"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"stegex/api"
	"stegex/internal/logging"
	"stegex/pkg/config"
	stegexImage "stegex/pkg/image"
)

// ImageCapacityHandler godoc
//
// @Summary Report how many payload bytes an image can yield
// @Description Returns the number of whole bytes recoverable from the least significant bits of the supplied image
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractImageRequest true "Body with image to inspect"
// @Success 200 {object} api.ImageCapacityResponse
// @Failure 400 {object} api.Error
// @Router /capacity/image [post]
func ImageCapacityHandler(ctx *gin.Context) {
	var requestBody api.ExtractImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	imageToInspect, err := stegexImage.DecodeRGBA(bytes.NewReader(requestBody.ImageToExtract))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageExtractor := stegexImage.NewImageExtractor(imageToInspect, config.ImageExtractConfig{})
	capacity := imageExtractor.Capacity()

	ctx.JSON(http.StatusOK, api.ImageCapacityResponse{
		Width:         imageToInspect.Rect.Dx(),
		Height:        imageToInspect.Rect.Dy(),
		CapacityBytes: capacity,
		CapacityHuman: humanize.Bytes(uint64(capacity)),
	})
}
