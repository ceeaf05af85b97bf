package config

const (
	DefaultChunkSize = 32 * 1024
)

type ImageExtractConfig struct {
	// ChunkSize is the buffer size used when draining a payload to a writer.
	ChunkSize int
}

func (c ImageExtractConfig) PopulateUnsetConfigVars() ImageExtractConfig {
	if c.ChunkSize < 1 {
		c.ChunkSize = DefaultChunkSize
	}
	return c
}
