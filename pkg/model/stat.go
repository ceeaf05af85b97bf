package model

import (
	"time"
)

type ExtractStats struct {
	DataExtraction time.Duration `json:"data_extraction"`
}
