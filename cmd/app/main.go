package main

import (
	"flag"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/render"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/0x0FACED/go-voronoi/static"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxStations caps the number of sites a single request may ask for. It
// matches the limit of the form.
const maxStations = 5000

type config struct {
	addr     string
	width    int
	height   int
	stations int
	level    *zapcore.Level
}

func parseConfig() config {
	var cfg config
	flag.StringVar(&cfg.addr, "addr", ":8080", "listen address")
	flag.IntVar(&cfg.width, "width", 1000, "default diagram width")
	flag.IntVar(&cfg.height, "height", 1000, "default diagram height")
	flag.IntVar(&cfg.stations, "stations", 12, "default number of stations")
	cfg.level = zap.LevelFlag("log-level", zapcore.InfoLevel, "level of the per-request log shown on the page")
	flag.Parse()
	return cfg
}

// request holds the form values of one diagram request.
type request struct {
	width, height, stations int
	random, border          bool
}

func (c config) parseRequest(r *http.Request) (request, error) {
	req := request{width: c.width, height: c.height, stations: c.stations}
	if r.Method != http.MethodPost {
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("parse form: %w", err)
	}

	var err error
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"width", &req.width},
		{"height", &req.height},
		{"stations", &req.stations},
	} {
		if err = formInt(r, f.name, f.dst); err != nil {
			return req, err
		}
	}
	if req.stations < 0 {
		return req, fmt.Errorf("stations must not be negative, got %d", req.stations)
	}
	if req.stations > maxStations {
		return req, fmt.Errorf("stations must be at most %d, got %d", maxStations, req.stations)
	}
	req.random = r.FormValue("random") == "true"
	req.border = r.FormValue("border") == "true"
	return req, nil
}

func formInt(r *http.Request, name string, dst *int) error {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	*dst = n
	return nil
}

// diagramHandler serves the page with the form, the diagram and the log of
// its computation.
func (c config) diagramHandler(w http.ResponseWriter, r *http.Request) {
	log := logger.New(*c.level)
	defer log.ClearLogs()

	fmt.Fprintln(w, static.Part1)

	if err := c.writeDiagram(w, r, log); err != nil {
		log.Error("[http] Request failed", zap.Error(err))
		fmt.Fprintf(w, static.ErrorPart, html.EscapeString(err.Error()))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, log.HTML())
	fmt.Fprintln(w, static.Part3)
}

func (c config) writeDiagram(w http.ResponseWriter, r *http.Request, log *logger.ZapLogger) error {
	req, err := c.parseRequest(r)
	if err != nil {
		return err
	}

	var points []voronoi.Point
	if req.random {
		points = render.UniformSites(req.stations, max(req.width, 1), max(req.height, 1), rand.New(rand.NewSource(time.Now().UnixNano())))
	} else {
		points = render.GridSites(req.stations, req.width, req.height)
	}

	bounds, err := voronoi.NewRect(0, 0, float64(req.width), float64(req.height))
	if err != nil {
		return err
	}

	mode := voronoi.DoNotMakeBorderEdges
	if req.border {
		mode = voronoi.MakeBorderEdges
	}

	start := time.Now()
	diagram, err := voronoi.CreateDiagram(points, bounds, mode, voronoi.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("[http] Diagram built",
		zap.Int("sites", len(diagram.Sites)),
		zap.Int("edges", len(diagram.Edges)),
		zap.Duration("took", time.Since(start)),
	)

	return render.Render(w, diagram, "Voronoi diagram (Fortune's sweep)")
}

func main() {
	cfg := parseConfig()

	http.HandleFunc("/", cfg.diagramHandler)
	fmt.Println("Server started at http://localhost" + cfg.addr)
	if err := http.ListenAndServe(cfg.addr, nil); err != nil {
		fmt.Println("Err ListenAndServe:", err)
	}
}
