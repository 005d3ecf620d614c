package posting

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"os"
	"testing"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func getPostingMock(status int) (*http.Response, error) {
	file, err := os.ReadFile("testdata/posting.html")

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBuffer(file)),
	}, err
}

func Test_PostingClient_Fetch_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)
	pageURL := "https://jobs.globex.com/openings/42"

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == pageURL && req.Header.Get("User-Agent") == userAgent
	})).Return(getPostingMock(http.StatusOK))

	client := NewClient()
	client.SetHTTPClient(mockClient)

	posting, err := client.Fetch(context.Background(), pageURL)
	require.NoError(t, err)

	assert.Equal(pageURL, posting.URL)
	assert.Equal("Senior Go Engineer", posting.Title)
	assert.Equal("Globex", posting.Company)
	assert.Contains(posting.Description, "We build payment infrastructure.")
	assert.Contains(posting.Description, "- 5+ years of Go")
	assert.Contains(posting.Description, "- PostgreSQL & Kafka")
	assert.NotContains(posting.Description, "track()")
	assert.NotContains(posting.Description, "Copyright")
	mockClient.AssertExpectations(t)
}

func Test_PostingClient_Fetch_BadStatus_ReturnsError(t *testing.T) {
	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(getPostingMock(http.StatusNotFound))

	client := NewClient()
	client.SetHTTPClient(mockClient)

	_, err := client.Fetch(context.Background(), "https://jobs.globex.com/openings/404")
	assert.ErrorContains(t, err, "404")
}

func Test_PostingClient_Fetch_InvalidURL_DoesNotSendRequest(t *testing.T) {
	mockClient := &mockHTTPClient{}

	client := NewClient()
	client.SetHTTPClient(mockClient)

	for _, u := range []string{"", "jobs.globex.com/42", "ftp://globex.com/job"} {
		_, err := client.Fetch(context.Background(), u)
		assert.Error(t, err, u)
	}
	mockClient.AssertNotCalled(t, "Do", mock.Anything)
}

func Test_Parse_NoContent_ReturnsErrNoDescription(t *testing.T) {
	_, err := Parse("<html><body><nav>menu</nav></body></html>")
	assert.ErrorIs(t, err, ErrNoDescription)
}

func Test_Parse_NoKnownSelector_FallsBackToBody(t *testing.T) {
	posting, err := Parse("<html><head><title>Backend role</title></head><body><p>Write Go.</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Backend role", posting.Title)
	assert.Equal(t, "Write Go.", posting.Description)
}
