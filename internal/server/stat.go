package server

import (
	"stegex/pkg/model"
)

type humanizedExtractStats struct {
	model.ExtractStats
	DataExtractionHuman string `json:"data_extraction_human"`
}

func toHumanizedExtractStats(extractStats model.ExtractStats) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:        extractStats,
		DataExtractionHuman: extractStats.DataExtraction.String(),
	}
}
