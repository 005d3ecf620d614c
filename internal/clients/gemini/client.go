package gemini

import (
	"context"
	"errors"
	"github.com/google/generative-ai-go/genai"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"strings"
	"time"
)

type Model string

const (
	//Model20Flash is the fast general purpose model, good enough for drafts
	Model20Flash Model = "gemini-2.0-flash"
	//Model25Flash balances price and quality
	Model25Flash Model = "gemini-2.5-flash"
	//Model25Pro gives the best writing quality for final documents
	Model25Pro Model = "gemini-2.5-pro"
)

var ErrEmptyResponse = errors.New("model returned no text")

type Client struct {
	client            *genai.Client
	model             *genai.GenerativeModel
	minuteRateLimiter *rate.Limiter
	dayRateLimiter    *rate.Limiter
}

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	genModel := client.GenerativeModel(string(model))

	service := Client{
		client: client,
		model:  genModel,
	}

	return &service, nil
}

func (c *Client) SetSystemInstruction(instruction string) {
	c.model.SystemInstruction = genai.NewUserContent(genai.Text(instruction))
}

func (c *Client) SetTemperature(temperature float32) {
	c.model.SetTemperature(temperature)
}

func (c *Client) SetMinuteRateLimit(maxRequestsPerMinute float32) {
	c.minuteRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerMinute/60), 1)
}

func (c *Client) SetDayRateLimit(maxRequestsPerDay float32) {
	c.dayRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerDay/86400), int(maxRequestsPerDay))
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) GenerateResponse(ctx context.Context, text string) (string, error) {

	var resp string
	var err error

	_, _, _ = lo.AttemptWhileWithDelay(3, 2*time.Second, func(i int, _ time.Duration) (error, bool) {
		if i > 0 {
			log.Warn("gemini api returned 500 error, retrying...")
		}
		resp, err = c.waitAndGenerateResponse(ctx, text)
		return err, isInternalError(err)
	})

	return resp, err
}

func (c *Client) waitAndGenerateResponse(ctx context.Context, text string) (string, error) {

	limiters := []*rate.Limiter{c.minuteRateLimiter, c.dayRateLimiter}
	for _, limiter := range limiters {
		if limiter != nil {
			err := limiter.Wait(ctx)
			if err != nil {
				return "", err
			}
		}
	}

	response, err := c.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", err
	}
	return responseText(response)
}

// responseText joins the text parts of the first candidate.
func responseText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	content := response.Candidates[0].Content
	if content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func isInternalError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Error 500")
}
