package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pixelbrew/filmic/cmd"
)

func main() {
	var opts cmd.ProcessOptions
	var inDir string
	var outDir string
	var configPath string
	var poolSize int
	var seed uint64
	var every time.Duration
	var port int
	var debug bool

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:  "filmic",
		Long: `Film-style image filtering: grain, colour enhancement, glow and sharpening`,
	}

	processCmd := &cobra.Command{
		Use:   "process --in <file> --out <file> [--config <pipeline.json>]",
		Short: "Apply the filter pipeline to a single PNG",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Process(opts)
		},
	}
	processCmd.Flags().StringVar(&opts.InPath, "in", "", "Input PNG file")
	processCmd.Flags().StringVar(&opts.OutPath, "out", "", "Output PNG file")
	processCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "JSON pipeline config (defaults to the stock treatment)")
	processCmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for the grain noise source")
	processCmd.Flags().BoolVar(&opts.Optimize, "optimize", false, "Re-encode the output via ffmpeg")
	processCmd.Flags().StringVar(&opts.AnimatePath, "animate", "", "Write a stage-by-stage animated PNG to this path")
	processCmd.Flags().StringVar(&opts.ThumbnailPath, "thumbnail", "", "Write a preview thumbnail to this path")
	processCmd.Flags().IntVar(&opts.ThumbnailSize, "thumbnail-size", 256, "Longest side of the preview thumbnail")
	_ = processCmd.MarkFlagRequired("in")
	_ = processCmd.MarkFlagRequired("out")

	batchCmd := &cobra.Command{
		Use:   "batch --in <dir> --out <dir> [--pool <n>]",
		Short: "Apply the filter pipeline to every PNG in a directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Batch(inDir, outDir, configPath, poolSize, seed)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch --in <dir> --out <dir> [--every <duration>]",
		Short: "Re-scan a directory on an interval and process new PNGs",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Watch(inDir, outDir, configPath, every, poolSize, seed)
		},
	}
	watchCmd.Flags().DurationVar(&every, "every", 5*time.Minute, "Scan interval")

	for _, c := range []*cobra.Command{batchCmd, watchCmd} {
		c.Flags().StringVar(&inDir, "in", "", "Input directory")
		c.Flags().StringVar(&outDir, "out", "", "Output directory")
		c.Flags().StringVar(&configPath, "config", "", "JSON pipeline config (defaults to the stock treatment)")
		c.Flags().IntVar(&poolSize, "pool", 4, "Worker pool size")
		c.Flags().Uint64Var(&seed, "seed", 0, "Seed for the grain noise source")
		_ = c.MarkFlagRequired("in")
		_ = c.MarkFlagRequired("out")
	}

	serveCmd := &cobra.Command{
		Use:   "serve [--port <port>] [--debug]",
		Short: "Start HTTP API server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.Serve(port, debug)
		},
	}
	serveCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	rootCmd.AddCommand(processCmd, batchCmd, watchCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
