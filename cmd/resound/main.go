// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/resound"
	"github.com/poiesic/resound/ai"
	"github.com/poiesic/resound/backfill"
	"github.com/poiesic/resound/pipeline"
)

func main() {
	app := &cli.App{
		Name:  "resound",
		Usage: "Conversational memory from recorded audio",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB database directory",
				Required: true,
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "process",
				Usage:     "Upload an audio file and run the full pipeline",
				ArgsUsage: "<audio-file>",
				Action:    processCommand,
			},
			{
				Name:      "transcribe",
				Usage:     "Re-run only the transcription phase for a recording",
				ArgsUsage: "<recording-id>",
				Action:    actionCommand(pipeline.ActionTranscribe),
			},
			{
				// There is intentionally no extract command; entity
				// extraction runs only as part of the full sequence.
				Name:      "summarize",
				Usage:     "Re-run only the memory compilation phase for a recording",
				ArgsUsage: "<recording-id>",
				Action:    actionCommand(pipeline.ActionSummarize),
			},
			{
				Name:      "show",
				Usage:     "Show a recording's transcript, entities, and memory",
				ArgsUsage: "<recording-id>",
				Action:    showCommand,
			},
			{
				Name:      "search",
				Usage:     "Search transcripts, memories, and entities",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of results",
						Value: 10,
					},
				},
			},
			{
				Name:   "recompile",
				Usage:  "Re-run memory compilation across all completed recordings",
				Action: recompileCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N recordings",
						Value: 10,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List recordings, newest first",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of recordings (0 for all)",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads .env credentials and configures logging.
func setup(c *cli.Context) error {
	// Missing .env is fine; credentials may come from the environment
	godotenv.Load()

	levelStr := strings.ToLower(c.String("log-level"))
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// configFromEnv builds the AI configuration from environment variables,
// leaving defaults in place for anything unset.
func configFromEnv() *ai.Config {
	var opts []ai.ConfigOption
	if v := os.Getenv("DEEPGRAM_API_KEY"); v != "" {
		opts = append(opts, ai.WithTranscriptionKey(v))
	}
	if v := os.Getenv("RESOUND_TRANSCRIPTION_HOST"); v != "" {
		opts = append(opts, ai.WithTranscriptionHost(v))
	}
	if v := os.Getenv("RESOUND_CHAT_HOST"); v != "" {
		opts = append(opts, ai.WithChatHost(v))
	}
	if v := os.Getenv("RESOUND_CHAT_MODEL"); v != "" {
		opts = append(opts, ai.WithChatModel(v))
	}
	if v := os.Getenv("RESOUND_CHAT_TOKEN"); v != "" {
		opts = append(opts, ai.WithChatToken(v))
	}
	return ai.NewConfig(opts...)
}

func openDatabase(c *cli.Context) (*resound.Database, error) {
	db, err := resound.NewDatabase(c.String("db"), resound.WithAIConfig(configFromEnv()))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// contentTypeForFile maps an audio file extension to its MIME type.
func contentTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".ogg", ".opus":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	default:
		return "application/octet-stream"
	}
}

func processCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one audio file argument")
	}
	audioPath, err := filepath.Abs(c.Args().First())
	if err != nil {
		return err
	}
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	recording, job, err := db.UploadRecording(ctx, audioPath, contentTypeForFile(audioPath))
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	fmt.Printf("Recording %s uploaded\n", recording.Id)

	if err := db.ProcessJob(ctx, job); err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}
	fmt.Printf("Recording %s processed\n", recording.Id)
	return nil
}

// actionCommand runs a single-phase job for an existing recording.
func actionCommand(action pipeline.Action) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("expected exactly one recording ID argument")
		}

		db, err := openDatabase(c)
		if err != nil {
			return err
		}
		defer db.Close()

		job := &pipeline.Job{RecordingID: c.Args().First(), Action: action}
		if err := db.ProcessJob(context.Background(), job); err != nil {
			return fmt.Errorf("%s failed: %w", action, err)
		}
		fmt.Printf("Recording %s: %s complete\n", job.RecordingID, action)
		return nil
	}
}

func showCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one recording ID argument")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	id := c.Args().First()

	recording, err := db.RecordingRepository().GetRecording(ctx, id)
	if err != nil {
		return fmt.Errorf("recording %s: %w", id, err)
	}
	fmt.Printf("%s  %s  [%s]  %.1fs, %d speakers\n",
		recording.Id, recording.Filename, recording.State,
		recording.DurationSeconds, recording.SpeakerCount)

	if transcript, err := db.RecordingRepository().GetTranscript(ctx, id); err == nil {
		fmt.Println("\nTranscript:")
		for _, segment := range transcript.Segments {
			fmt.Printf("  [%6.1fs] %s: %s\n",
				float64(segment.StartMS)/1000, segment.Speaker, segment.Text)
		}
	}

	mentions, err := db.EntityRepository().GetMentionsByRecording(ctx, id)
	if err == nil && len(mentions) > 0 {
		fmt.Println("\nEntities:")
		seen := make(map[string]bool)
		for _, mention := range mentions {
			entity, err := db.EntityRepository().GetEntity(ctx, mention.EntityId)
			if err != nil || seen[entity.Name] {
				continue
			}
			seen[entity.Name] = true
			fmt.Printf("  %s (%s, %s): %s\n",
				entity.Name, entity.Type, entity.Tier, entity.Portrait)
		}
	}

	if memory, err := db.MemoryRepository().GetMemory(ctx, id); err == nil {
		fmt.Printf("\nMemory: %s\n  %s\n", memory.Title, memory.Summary)
		moments, err := db.MemoryRepository().GetMoments(ctx, id)
		if err == nil && len(moments) > 0 {
			fmt.Println("\nMoments:")
			for _, moment := range moments {
				fmt.Printf("  %d. %q (%s)\n", moment.Seq+1, moment.Quote, moment.Significance)
			}
		}
	}

	return nil
}

func recompileCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &backfill.Config{ReportInterval: c.Int("report-interval")}
	runner, err := db.NewBackfillRunner(pipeline.ActionSummarize, config, os.Stderr)
	if err != nil {
		return err
	}
	return runner.Run(context.Background())
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a search query")
	}
	query := strings.Join(c.Args().Slice(), " ")

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	hits, err := db.Search(context.Background(), query, c.Int("max-hits"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(hits) == 0 {
		fmt.Println("No matches")
		return nil
	}

	for _, hit := range hits {
		fmt.Printf("%.2f  %-8s  %s  %s\n", hit.Score, hit.Kind, hit.RecordingId, hit.Snippet)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	recordings, err := db.RecordingRepository().ListRecordings(context.Background(), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}
	if len(recordings) == 0 {
		fmt.Println("No recordings")
		return nil
	}

	for _, recording := range recordings {
		fmt.Printf("%s  %-30s  %-24s  %s\n",
			recording.Id, recording.Filename, recording.State,
			recording.InsertedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
