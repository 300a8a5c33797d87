package video

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"clipscribe/config"
	"clipscribe/transcript"
)

// Publisher uploads finished videos to YouTube using a service account.
type Publisher struct {
	service *youtube.Service
}

// NewPublisher authenticates against the YouTube API with the given service
// account credentials file.
func NewPublisher(serviceAccountFile string) (*Publisher, error) {
	ctx := context.Background()

	data, err := os.ReadFile(serviceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	client := jwtCfg.Client(ctx)

	service, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}

	return &Publisher{service: service}, nil
}

// Publish uploads the video at videoPath with metadata derived from its
// transcript and returns the new video ID.
func (p *Publisher) Publish(videoPath string, segments []transcript.Segment) (string, error) {
	meta := metadataFromTranscript(segments)

	file, err := os.Open(videoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat video file: %w", err)
	}

	log.Printf("Uploading: %s (%.2f MB)", videoPath, float64(fileInfo.Size())/(1024*1024))

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       meta.Title,
			Description: meta.Description,
			Tags:        meta.Tags,
			CategoryId:  meta.CategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           config.YouTubePrivacyStatus,
			SelfDeclaredMadeForKids: false,
		},
	}

	call := p.service.Videos.Insert([]string{"snippet", "status"}, video)
	call = call.Media(file)

	response, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	log.Printf("Uploaded: https://youtube.com/watch?v=%s", response.Id)
	return response.Id, nil
}

// metadataFromTranscript derives a title from the opening words of the
// transcript and fills in standard description and tags.
func metadataFromTranscript(segments []transcript.Segment) Metadata {
	title := "Video with subtitles"
	if len(segments) > 0 {
		words := strings.Fields(segments[0].Text)
		if len(words) > 8 {
			words = words[:8]
		}
		if len(words) > 0 {
			title = strings.Join(words, " ")
		}
	}
	if len(title) > 100 {
		title = title[:97] + "..."
	}

	description := "Subtitled with clipscribe.\n\n#subtitles #captions"

	return Metadata{
		Title:       title,
		Description: description,
		Tags:        []string{"subtitles", "captions", "video"},
		CategoryID:  config.YouTubeCategoryID,
	}
}
