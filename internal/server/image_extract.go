package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"stegex/api"
	"stegex/internal/logging"
	"stegex/pkg/config"
	stegexImage "stegex/pkg/image"
	"stegex/pkg/model"
)

var (
	errExtract = api.Error{Code: "extract_error", Error: "error while extracting payload from image"}
)

// ExtractImageHandler godoc
//
// @Summary Extract the LSB payload from an image
// @Description This endpoint will extract the byte stream hidden in the least significant bits of the supplied image. The payload is returned raw; all errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractImageRequest true "Body with image to extract from"
// @Success 200 {object} api.ExtractImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract/image [post]
func ExtractImageHandler(ctx *gin.Context) {
	var requestBody api.ExtractImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	imageToExtract, err := stegexImage.DecodeRGBA(bytes.NewReader(requestBody.ImageToExtract))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageExtractor := stegexImage.NewImageExtractor(imageToExtract, config.ImageExtractConfig{})

	bytesToExtract := imageExtractor.Capacity()
	if requestBody.MaxBytes > 0 && requestBody.MaxBytes < bytesToExtract {
		bytesToExtract = requestBody.MaxBytes
	}

	extractedBytes, err := imageExtractor.Extract(bytesToExtract)
	if err != nil {
		logger.WithError(err).Error("Error extracting payload from image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errExtract)
		return
	}

	logger.With("stats", toHumanizedExtractStats(imageExtractor.Stats())).Info("Image extraction was successful")

	ctx.JSON(http.StatusOK, api.ExtractImageResponse{Payload: model.OutputPayload{
		Content: extractedBytes,
		Size:    len(extractedBytes),
	}})
}
