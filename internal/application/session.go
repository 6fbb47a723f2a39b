package application

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/codesweep/codesweep/internal/domain"
	"github.com/codesweep/codesweep/internal/domain/rules"
)

// SessionService orchestrates one run:
// validate -> discover -> process files in parallel -> aggregate.
type SessionService struct {
	discoverer domain.FileDiscoverer
	workspace  domain.WorkspaceIO
	configs    domain.ConfigLoader
	repo       domain.RepoInspector
	log        *logrus.Logger
}

func NewSessionService(
	discoverer domain.FileDiscoverer,
	workspace domain.WorkspaceIO,
	configs domain.ConfigLoader,
	repo domain.RepoInspector,
	log *logrus.Logger,
) *SessionService {
	if log == nil {
		log = logrus.New()
	}
	return &SessionService{
		discoverer: discoverer,
		workspace:  workspace,
		configs:    configs,
		repo:       repo,
		log:        log,
	}
}

// Run executes a full session and returns the report. It returns an error
// only for session-level failures (bad configuration, missing target,
// cancellation); per-file failures are folded into the report.
func (s *SessionService) Run(ctx context.Context, cfg domain.SessionConfig) (*domain.RunReport, error) {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"target": cfg.TargetPath, "mode": string(cfg.Mode)})

	// Validating
	log.WithField("phase", domain.PhaseValidating).Debug("validating session configuration")
	if err := cfg.Validate(); err != nil {
		log.WithField("phase", domain.PhaseAborted).Debugf("invalid session config: %v", err)
		return nil, err
	}

	projCfg, err := s.configs.Load(cfg.TargetPath)
	if err != nil {
		log.WithField("phase", domain.PhaseAborted).Debugf("project config: %v", err)
		return nil, err
	}
	// Skip and override names are checked against the unfiltered registry, so
	// a skipped rule is still a known name.
	full := rules.Default(rules.Options{})
	if err := projCfg.Validate(full.RuleIDs(), full.Languages()); err != nil {
		log.WithField("phase", domain.PhaseAborted).Debugf("invalid project config: %v", err)
		return nil, err
	}

	reg := rules.Default(rules.Options{
		SkipRules:  toSet(projCfg.SkipRules),
		LineLength: projCfg.LineLength,
	})

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = reg.Extensions()
	}

	// Discovering
	log.WithFields(logrus.Fields{"phase": domain.PhaseDiscovering, "extensions": len(exts)}).Debug("discovering files")
	files, err := s.discoverer.Discover(cfg.TargetPath, exts, projCfg.ExcludeDirs)
	if err != nil {
		log.WithField("phase", domain.PhaseAborted).Debugf("discovery failed: %v", err)
		return nil, err
	}

	report := &domain.RunReport{
		Target:    cfg.TargetPath,
		Mode:      cfg.Mode,
		Timestamp: time.Now().UTC(),
	}
	if hash, ok := s.repo.CommitHash(cfg.TargetPath); ok {
		report.CommitHash = hash
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Processing. Workers write into their own slot, so report order follows
	// discovery order and no mutex is needed.
	log.WithFields(logrus.Fields{"phase": domain.PhaseProcessing, "files": len(files), "jobs": jobs}).Debug("processing files")
	type slot struct {
		report domain.FileReport
		used   bool
	}
	results := make([]slot, len(files))

	if len(files) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(files)))
		for i, path := range files {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if fr, ok := s.processFile(reg, cfg.Mode, path); ok {
					results[i] = slot{report: fr, used: true}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.WithField("phase", domain.PhaseAborted).Debugf("processing interrupted: %v", err)
			return nil, err
		}
	}

	// Reporting
	for _, sl := range results {
		if sl.used {
			report.Files = append(report.Files, sl.report)
		}
	}
	report.Aggregate()
	log.WithFields(logrus.Fields{
		"phase": domain.PhaseDone,
		"files": report.Counters.FilesProcessed,
		"took":  time.Since(start).Round(time.Millisecond),
	}).Debug("session finished")

	return report, nil
}

// processFile runs one file through its rule set. ok is false when no rule
// set is registered for the extension; such files leave no trace in the
// report.
func (s *SessionService) processFile(reg *rules.Registry, mode domain.Mode, path string) (domain.FileReport, bool) {
	set, ok := reg.Lookup(filepath.Ext(path))
	if !ok {
		return domain.FileReport{}, false
	}
	fr := domain.FileReport{Path: path, Language: set.Language()}

	content, err := s.workspace.ReadText(path)
	if err != nil {
		s.log.WithField("path", path).Debugf("read failed: %v", err)
		fr.Failed = true
		fr.Err = err.Error()
		return fr, true
	}

	res := set.Apply(content)
	// Rules never see paths; the orchestrator stamps them.
	for i := range res.Issues {
		res.Issues[i].File = path
	}

	if mode != domain.ModeFix {
		fr.Issues = res.Issues
		return fr, true
	}

	var remaining []domain.Issue
	fixable := 0
	for _, issue := range res.Issues {
		if issue.Fixable {
			fixable++
			continue
		}
		remaining = append(remaining, issue)
	}
	fr.Issues = remaining
	fr.FixedCount = fixable

	if fixable > 0 && res.Content != content {
		if err := s.workspace.WriteTextAtomic(path, res.Content); err != nil {
			s.log.WithField("path", path).Debugf("write failed: %v", err)
			// Nothing was fixed: every issue is still outstanding.
			fr.Failed = true
			fr.Err = err.Error()
			fr.Issues = res.Issues
			fr.FixedCount = 0
			return fr, true
		}
		fr.Fixed = true
	}

	// An unresolved error-severity issue (structurally broken content) makes
	// the fix run fail for this file even without an I/O error.
	for _, issue := range remaining {
		if issue.Severity == domain.SeverityError {
			fr.Failed = true
			if fr.Err == "" {
				fr.Err = issue.Message
			}
			break
		}
	}
	return fr, true
}

func toSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
