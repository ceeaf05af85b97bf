package api

import "stegex/pkg/model"

type ExtractImageRequest struct {
	// ImageToExtract must be a losslessly encoded image, since lossy formats
	// destroy the LSBs the payload lives in.
	ImageToExtract []byte `json:"image_to_extract"`
	// MaxBytes limits how much of the payload is extracted. Zero means the
	// full capacity of the image.
	MaxBytes int `json:"max_bytes"`
}

type ExtractImageResponse struct {
	Payload model.OutputPayload `json:"payload"`
}

type ImageCapacityResponse struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	CapacityBytes int    `json:"capacity_bytes"`
	CapacityHuman string `json:"capacity_human"`
}
