package api

import (
	"github.com/gin-gonic/gin"

	"clipscribe/generate"
	"clipscribe/transcript"
	"clipscribe/video"
)

// Deps holds the services the HTTP layer exposes. Optional collaborators may
// be nil; the corresponding routes then answer with a configuration error.
type Deps struct {
	Generate    *generate.Service
	Transcripts transcript.Source
	Processor   *video.Processor
	Encoder     *video.Encoder
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = 64 << 20

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterGenerateRoutes(r, deps.Generate)
	RegisterTranscriptRoutes(r, deps.Transcripts, deps.Encoder)
	RegisterVideoRoutes(r, deps.Processor, deps.Transcripts)
	RegisterMediaRoutes(r, deps.Processor.UploadsDir())
	RegisterTopicRoutes(r)
	return r
}
