package gemini

import (
	"errors"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_ResponseText_JoinsTextParts(t *testing.T) {
	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("<html>"), genai.Text("</html>")}}},
		},
	}

	text, err := responseText(response)
	assert.NoError(t, err)
	assert.Equal(t, "<html></html>", text)
}

func Test_ResponseText_NoCandidates_ReturnsEmptyResponse(t *testing.T) {
	assert := assert.New(t)

	_, err := responseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(err, ErrEmptyResponse)

	_, err = responseText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
	assert.ErrorIs(err, ErrEmptyResponse)

	_, err = responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ")}}}},
	})
	assert.ErrorIs(err, ErrEmptyResponse)
}

func Test_IsInternalError(t *testing.T) {
	assert.True(t, isInternalError(errors.New("googleapi: Error 500: internal")))
	assert.False(t, isInternalError(errors.New("googleapi: Error 429: quota")))
	assert.False(t, isInternalError(nil))
}
