package cli

import (
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"stegex/pkg/config"
	stegexImage "stegex/pkg/image"
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Extracts LSB-embedded payloads from images",
		Example: "stegex image extract --source encoded.png --output payload.bin",
	}

	imageCmd.AddCommand(extractPayloadCommand(), imageCapacityCommand())
	return imageCmd
}

type extractImageOpts struct {
	sourceImage string
	outputFile  string
	maxBytes    int
	chunkSize   int
}

func (o extractImageOpts) toExtractConfig() config.ImageExtractConfig {
	return config.ImageExtractConfig{
		ChunkSize: o.chunkSize,
	}
}

func extractPayloadCommand() *cobra.Command {
	opts := extractImageOpts{}

	extractCmd := &cobra.Command{
		Use:     "extract",
		Example: "stegex image extract --source encoded.png --output payload.bin",
		Short:   "Extract the byte stream hidden in the LSBs of an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExtractPayloadFromImage(opts.sourceImage, opts.outputFile, opts.maxBytes, opts.toExtractConfig())
		},
	}

	extractCmd.Flags().StringVar(&opts.sourceImage, "source", "", "Image containing the embedded payload")
	extractCmd.Flags().StringVar(&opts.outputFile, "output", "", "File to write the extracted payload to, or - for stdout")
	extractCmd.Flags().IntVar(&opts.maxBytes, "max-bytes", 0, "Stop after extracting this many bytes. 0 extracts everything the image holds")
	extractCmd.Flags().IntVar(&opts.chunkSize, "chunk-size", config.DefaultChunkSize, "Buffer size used while draining the payload")

	MarkFlagsRequired(extractCmd, "source", "output")

	return extractCmd
}

func ExtractPayloadFromImage(imageSourcePath, outputPath string, maxBytes int, iConfig config.ImageExtractConfig) error {
	payloadToStdout := outputPath == "-"

	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	if !payloadToStdout {
		// The spinner shares stdout with the payload, so it stays off when
		// the payload is streamed there.
		s.Start()
	}

	srcImage, err := getImageFromFilePath(imageSourcePath)
	if err != nil {
		s.Stop()
		return err
	}

	iExtractor := stegexImage.NewImageExtractor(srcImage, iConfig)

	var output io.Writer = os.Stdout
	if !payloadToStdout {
		outputFile, err := os.Create(outputPath)
		if err != nil {
			s.Stop()
			return err
		}
		defer outputFile.Close()
		output = outputFile
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(500 * time.Millisecond):
				s.Prefix = fmt.Sprintf("Extracting payload %d%% ", iExtractor.Progress())
			}
		}
	}()

	extractedBytes, err := iExtractor.ExtractTo(output, maxBytes)
	close(done)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("Extracted %s to %s\n", humanize.Bytes(uint64(extractedBytes)), outputPath)
	s.Stop()

	summaryOutput := os.Stdout
	if payloadToStdout {
		summaryOutput = os.Stderr
	}
	fmt.Fprintf(summaryOutput, "Data extract time: %s\n", iExtractor.Stats().DataExtraction)
	return nil
}

func imageCapacityCommand() *cobra.Command {
	var sourceImage string

	capacityCmd := &cobra.Command{
		Use:     "capacity",
		Example: "stegex image capacity --source encoded.png",
		Short:   "Report how many payload bytes an image can yield",
		RunE: func(cmd *cobra.Command, args []string) error {
			srcImage, err := getImageFromFilePath(sourceImage)
			if err != nil {
				return err
			}

			iExtractor := stegexImage.NewImageExtractor(srcImage, config.ImageExtractConfig{})
			fmt.Printf("%dx%d image holds up to %s of payload (%d bytes)\n",
				srcImage.Rect.Dx(), srcImage.Rect.Dy(),
				humanize.Bytes(uint64(iExtractor.Capacity())), iExtractor.Capacity())
			return nil
		},
	}

	capacityCmd.Flags().StringVar(&sourceImage, "source", "", "Image to inspect")
	MarkFlagsRequired(capacityCmd, "source")

	return capacityCmd
}

func getImageFromFilePath(filePath string) (*image.RGBA, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	srcImage, err := stegexImage.DecodeRGBA(f)
	if err != nil {
		return nil, err
	} else if err = f.Close(); err != nil {
		return nil, err
	}

	return srcImage, nil
}
