package pages

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ng-jenkins-demo/internal/core"
	"ng-jenkins-demo/internal/notify"
)

//go:embed templates/* static
var Files embed.FS

const baseLayout = "layouts/base"

type Pages struct {
	t           map[string]*template.Template
	dev         bool
	templateDir string // templates on disk, reloaded per request in dev mode
	logger      *slog.Logger
}

func NewPages(logger *slog.Logger, dev bool) (*Pages, error) {
	p := &Pages{
		dev:         dev,
		templateDir: "internal/pages",
		logger:      logger,
	}

	t, err := loadTemplates(Files)
	if err != nil {
		return nil, err
	}
	p.t = t
	logger.Debug("templates loaded", "count", len(t))

	return p, nil
}

// loadTemplates parses every page under templates/ on top of the layouts.
func loadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)

	err := fs.WalkDir(fsys, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		if strings.Contains(path, "layouts/") {
			return nil
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		tmpl, err := template.New(name).
			Funcs(funcMap()).
			ParseFS(fsys, "templates/layouts/*.html", path)
		if err != nil {
			return fmt.Errorf("setting up template %s: %w", name, err)
		}
		templates[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template dir: %w", err)
	}

	return templates, nil
}

func (p *Pages) execute(name string, w io.Writer, params any) error {
	templates := p.t
	if p.dev {
		fresh, err := loadTemplates(os.DirFS(filepath.Clean(p.templateDir)))
		if err != nil {
			p.logger.Warn("failed to reload templates from disk", "err", err)
		} else {
			templates = fresh
		}
	}

	tmpl, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	return tmpl.ExecuteTemplate(w, baseLayout, params)
}

// Static serves the embedded stylesheet and assets.
func Static() http.Handler {
	sub, err := fs.Sub(Files, "static")
	if err != nil {
		// static is part of the embed pattern
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// ShellParams carries the application shell's own build metadata.
type ShellParams struct {
	Version   string
	BuildID   string
	StartedAt time.Time
}

func NewShell(ids core.IDProvider, startedAt time.Time) ShellParams {
	info := core.NewBuildInfo(ids)
	return ShellParams{
		Version:   info.Version,
		BuildID:   info.BuildID,
		StartedAt: startedAt,
	}
}

type Feature struct {
	Icon  string
	Title string
	Text  string
}

var features = []Feature{
	{Icon: "⚡", Title: "Angular 17", Text: "Built with the latest Angular framework featuring standalone components and modern tooling."},
	{Icon: "🐳", Title: "Docker", Text: "Multi-stage containerization for optimized production builds and deployment."},
	{Icon: "☸️", Title: "Kubernetes", Text: "Deployed on Minikube with health checks, scaling, and ingress configuration."},
	{Icon: "🔧", Title: "Jenkins Pipeline", Text: "Automated CI/CD pipeline with testing, building, and deployment stages."},
}

func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

type HomeParams struct {
	Shell        ShellParams
	Build        core.BuildInfo
	Features     []Feature
	Stages       []core.NumberedStage
	HeroActions  []notify.Notification
	QuickActions []notify.Notification
}

// NewHomeParams assembles the home view from its fixed data.
func NewHomeParams(shell ShellParams, build core.BuildInfo, pipeline *core.Pipeline) HomeParams {
	return HomeParams{
		Shell:        shell,
		Build:        build,
		Features:     Features(),
		Stages:       pipeline.Numbered(),
		HeroActions:  []notify.Notification{notify.ShowInfo(), notify.CheckHealth()},
		QuickActions: []notify.Notification{notify.TriggerBuild(), notify.ViewLogs(), notify.OpenDashboard()},
	}
}

func (p *Pages) Home(w io.Writer, params HomeParams) error {
	return p.execute("home", w, params)
}
