package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"clipscribe/api"
	"clipscribe/articles"
	"clipscribe/common"
	"clipscribe/config"
	"clipscribe/generate"
	"clipscribe/queue"
	"clipscribe/textgen"
	"clipscribe/transcript"
	"clipscribe/video"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = config.UploadsDir
	}
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Fatalf("failed to create uploads directory: %v", err)
	}

	provider := textgen.NewDefaultProvider()
	if provider == nil {
		log.Println("Warning: no generation provider configured; /api/generate will fail")
	} else {
		log.Printf("Generation provider ready (model: %s)", provider.ModelName())
	}

	transcripts := initializeTranscripts()
	svc := generate.NewService(provider, transcripts, articles.NewExtractor())

	encoder := video.NewEncoder(os.Getenv("FFMPEG_PATH"))
	s3Client, s3Bucket, s3Prefix := initializeS3()
	processor := video.NewProcessor(encoder, video.ProcessorConfig{
		UploadsDir: uploadsDir,
		Store:      s3Client,
		Bucket:     s3Bucket,
		Prefix:     s3Prefix,
		Publisher:  initializePublisher(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if consumer := initializeConsumer(ctx, processor); consumer != nil {
		defer consumer.Close()
	}

	r := api.NewRouter(api.Deps{
		Generate:    svc,
		Transcripts: transcripts,
		Processor:   processor,
		Encoder:     encoder,
	})

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  POST /api/generate")
	log.Println("  POST /api/process-video")
	log.Println("  POST /api/process-local-video")
	log.Println("  POST /api/youtube-transcript")
	log.Println("  POST /api/transcribe")
	log.Println("  GET  /api/video-preview")
	log.Println("  GET  /api/video-download")
	log.Println("  GET  /api/topics")
	log.Println("  GET  /health")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// initializeTranscripts builds the transcript source, wrapped in a Redis
// cache when REDIS_ADDR is set.
func initializeTranscripts() transcript.Source {
	src := transcript.NewYouTubeSource()

	redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if redisAddr == "" {
		return src
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Printf("Transcript cache enabled (redis: %s)", redisAddr)
	return transcript.NewCachedSource(src, rdb)
}

// initializeS3 returns an S3 client and target bucket/prefix if configured via env.
// Required: S3_BUCKET. Optional: S3_REGION, S3_PREFIX, S3_USE_PATH_STYLE=true
func initializeS3() (*common.S3, string, string) {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil, "", ""
	}

	cfg := common.S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}
	client, err := common.NewS3(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
		return nil, "", ""
	}

	prefix := strings.TrimSpace(os.Getenv("S3_PREFIX"))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return client, bucket, prefix
}

// initializePublisher sets up the optional YouTube uploader. Publishing is
// skipped when no service account is configured.
func initializePublisher() *video.Publisher {
	credsFile := strings.TrimSpace(os.Getenv("YOUTUBE_SERVICE_ACCOUNT"))
	if credsFile == "" {
		log.Println("YouTube publishing not configured; skipping uploads")
		return nil
	}

	publisher, err := video.NewPublisher(credsFile)
	if err != nil {
		log.Printf("Warning: failed to init YouTube publisher: %v (uploads disabled)", err)
		return nil
	}
	log.Println("YouTube publisher initialized")
	return publisher
}

// initializeConsumer starts the optional Kafka job consumer when
// KAFKA_BROKERS is set.
func initializeConsumer(ctx context.Context, processor *video.Processor) *queue.Consumer {
	brokersEnv := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokersEnv == "" {
		return nil
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "video-jobs"
	}
	groupID := os.Getenv("KAFKA_GROUP_ID")
	if groupID == "" {
		groupID = "clipscribe-workers"
	}

	consumer, err := queue.NewConsumer(queue.ConsumerConfig{
		Brokers: strings.Split(brokersEnv, ","),
		Topic:   topic,
		GroupID: groupID,
		Handler: queue.NewVideoJobHandler(processor),
	})
	if err != nil {
		log.Printf("Warning: failed to init Kafka consumer: %v (queue intake disabled)", err)
		return nil
	}

	if err := consumer.Start(ctx); err != nil {
		log.Printf("Warning: Kafka consumer failed to start: %v", err)
		consumer.Close()
		return nil
	}
	return consumer
}
