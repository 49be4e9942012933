package issues

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"
)

// Issue is the report submitted by a user.
type Issue struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpstreamResponse is what the tracker answered. Body is passed back to
// the reporter unchanged.
type UpstreamResponse struct {
	Status int
	Body   []byte
}

func (r *UpstreamResponse) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Creator files an issue with a tracker. An error means the tracker could
// not be reached; a rejection by the tracker is a response, not an error.
type Creator interface {
	CreateIssue(issue Issue) (*UpstreamResponse, error)
}

// GitHubCreator files issues through the GitHub REST API.
type GitHubCreator struct {
	cfg    Config
	client *fasthttp.Client
}

func NewGitHubCreator(cfg Config, client *fasthttp.Client) *GitHubCreator {
	if client == nil {
		client = &fasthttp.Client{Name: cfg.UserAgent}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	return &GitHubCreator{cfg: cfg, client: client}
}

func (g *GitHubCreator) endpoint() string {
	return fmt.Sprintf("%s/repos/%s/%s/issues", strings.TrimRight(g.cfg.APIBase, "/"), g.cfg.Owner, g.cfg.Repo)
}

func (g *GitHubCreator) CreateIssue(issue Issue) (*UpstreamResponse, error) {
	payload, err := json.Marshal(issue)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.endpoint())
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.Set("Authorization", "token "+g.cfg.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.SetContentType("application/json")
	req.Header.SetUserAgent(g.cfg.UserAgent)
	req.SetBody(payload)

	if err := g.client.DoTimeout(req, resp, g.cfg.Timeout); err != nil {
		return nil, fmt.Errorf("calling %s: %w", g.endpoint(), err)
	}

	return &UpstreamResponse{
		Status: resp.StatusCode(),
		Body:   append([]byte(nil), resp.Body()...),
	}, nil
}
