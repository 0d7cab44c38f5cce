// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/govcodex/internal/app/system/learner"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site context
	SiteName string

	// Learner context (from learner middleware)
	HasLearner bool
	LearnerID  string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

var (
	mu       sync.RWMutex
	siteName = "AI Governance Architect's Codex"
)

// Init sets the site name shown in every page header. Called once from
// bootstrap before handlers are registered.
func Init(name string) {
	if name == "" {
		return
	}
	mu.Lock()
	siteName = name
	mu.Unlock()
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM builds the common view model for a request.
func NewBaseVM(r *http.Request, title, backURL string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     backURL,
		CurrentPath: r.URL.Path,
	}
	if l, ok := learner.CurrentLearner(r); ok {
		vm.HasLearner = true
		vm.LearnerID = l.ID
	}
	return vm
}
