//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

// FakeProviders serves the generation, safety and moderation endpoints from
// one in-process server. Behaviour is switched per test and call counts are
// recorded so tests can assert which stages ran.
type FakeProviders struct {
	server *httptest.Server

	mu               sync.Mutex
	generateCalls    int
	safetyCalls      int
	moderateCalls    int
	generateStatus   int
	safetyDecision   string
	moderateDecision string
	beforeSafety     func()
}

func NewFakeProviders() *FakeProviders {
	f := &FakeProviders{}
	f.Reset()

	r := gin.New()
	r.POST("/v1/images", f.generate)
	r.POST("/v1/safety", f.safety)
	r.POST("/v1/moderate", f.moderate)
	f.server = httptest.NewServer(r)
	return f
}

func (f *FakeProviders) URL() string { return f.server.URL }

func (f *FakeProviders) Close() { f.server.Close() }

// Reset restores the all-ALLOW, always-succeeding behaviour and zeroes counters.
func (f *FakeProviders) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateCalls, f.safetyCalls, f.moderateCalls = 0, 0, 0
	f.generateStatus = http.StatusOK
	f.safetyDecision = "ALLOW"
	f.moderateDecision = "ALLOW"
	f.beforeSafety = nil
}

func (f *FakeProviders) SetGenerateStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateStatus = status
}

func (f *FakeProviders) SetSafetyDecision(d string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.safetyDecision = d
}

// BeforeSafety runs fn inside the safety call, before the verdict is sent.
// Tests use it to change durable state while a pipeline run is in flight.
func (f *FakeProviders) BeforeSafety(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.beforeSafety = fn
}

func (f *FakeProviders) SetModerationDecision(d string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moderateDecision = d
}

func (f *FakeProviders) Calls() (generate, safety, moderate int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generateCalls, f.safetyCalls, f.moderateCalls
}

func (f *FakeProviders) generate(c *gin.Context) {
	f.mu.Lock()
	f.generateCalls++
	n, status := f.generateCalls, f.generateStatus
	f.mu.Unlock()

	if status != http.StatusOK {
		c.JSON(status, gin.H{"error": "generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": fmt.Sprintf("%s/img/%d.png", f.server.URL, n)})
}

func (f *FakeProviders) safety(c *gin.Context) {
	f.mu.Lock()
	f.safetyCalls++
	decision, hook := f.safetyDecision, f.beforeSafety
	f.mu.Unlock()

	if hook != nil {
		hook()
	}

	c.JSON(http.StatusOK, gin.H{"decision": decision, "reason": "fake"})
}

func (f *FakeProviders) moderate(c *gin.Context) {
	var in struct {
		Prompt string `json:"prompt"`
	}
	_ = c.ShouldBindJSON(&in)

	f.mu.Lock()
	f.moderateCalls++
	decision := f.moderateDecision
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"decision": decision, "translatedPrompt": "EN: " + in.Prompt})
}
