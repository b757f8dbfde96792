package game

import (
	"strings"
	"sync"
)

// Report collects the compile-time diagnostics of a game. It is
// append-only and deduplicated: adding the same message twice keeps one
// copy, so diagnostics can be re-run without changing the report.
type Report struct {
	mu      sync.Mutex
	missing []string
	crash   []string
	seen    map[string]struct{}
}

func NewReport() *Report {
	return &Report{seen: make(map[string]struct{})}
}

func (r *Report) add(list *[]string, kind, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := kind + "|" + msg
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	*list = append(*list, msg)
}

// AddMissingRequirement records that the game uses a rule whose
// requirements are not met by the equipment or options.
func (r *Report) AddMissingRequirement(msg string) {
	r.add(&r.missing, "missing", msg)
}

// AddWillCrash records a rule that is expected to fail if play reaches it.
func (r *Report) AddWillCrash(msg string) {
	r.add(&r.crash, "crash", msg)
}

func (r *Report) MissingRequirements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.missing...)
}

func (r *Report) WillCrashes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.crash...)
}

// HasProblems is true if any diagnostic was recorded.
func (r *Report) HasProblems() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.missing) > 0 || len(r.crash) > 0
}

func (r *Report) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sb strings.Builder
	for _, m := range r.missing {
		sb.WriteString("missing requirement: ")
		sb.WriteString(m)
		sb.WriteString("\n")
	}
	for _, m := range r.crash {
		sb.WriteString("will crash: ")
		sb.WriteString(m)
		sb.WriteString("\n")
	}
	return sb.String()
}
