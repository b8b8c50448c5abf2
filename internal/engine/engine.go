package engine

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"view-scaffold/internal/cache"
	"view-scaffold/internal/config"
	"view-scaffold/internal/csparser"
	"view-scaffold/internal/finder"
	"view-scaffold/internal/logger"
	"view-scaffold/internal/model"
)

// ErrEmptyTypeName rejects misuse immediately so it stays
// distinguishable from "legitimately nothing found"
var ErrEmptyTypeName = errors.New("fully qualified type name must not be empty")

// Engine runs the extraction pipeline: locate the candidate source
// file, consult the cache, and on a miss normalize, recognize, classify
// and map the class's properties. It holds no mutable state beyond the
// cache, so concurrent extractions are independent.
type Engine struct {
	cfg   *config.Config
	cache *cache.Cache
}

// New creates an engine. The cache may be nil, in which case every
// extraction runs the full pipeline.
func New(cfg *config.Config, c *cache.Cache) *Engine {
	return &Engine{cfg: cfg, cache: c}
}

// ExtractProperties returns the ordered property list for a fully
// qualified type name, searching for its source file under searchRoot.
//
// Input-not-found, read failures, and recognition misses all degrade to
// an empty list: callers render with defaults rather than failing the
// generation flow. The only error returned is programmer misuse.
func (e *Engine) ExtractProperties(fullyQualifiedTypeName, searchRoot string) ([]model.Property, error) {
	if strings.TrimSpace(fullyQualifiedTypeName) == "" {
		return nil, ErrEmptyTypeName
	}

	_, className := model.SplitTypeName(fullyQualifiedTypeName)

	path, found := finder.FindClassFile(className, searchRoot, e.cfg.Project.ModelDirs, e.cfg.Analysis.ExcludeDirs)
	if !found {
		logger.Debug("[ENGINE] No source file found for %s under %s", fullyQualifiedTypeName, searchRoot)
		return nil, nil
	}

	if e.cache != nil {
		if props, hit := e.cache.Get(fullyQualifiedTypeName, path); hit {
			logger.Debug("[ENGINE] Cache hit for %s", fullyQualifiedTypeName)
			return props, nil
		}
	}

	content, err := finder.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read %s: %v", path, err)
		return nil, nil
	}

	props := csparser.ExtractProperties(content, className)
	logger.Debug("[ENGINE] Extracted %d properties for %s from %s", len(props), fullyQualifiedTypeName, path)

	if e.cache != nil {
		e.cache.Set(fullyQualifiedTypeName, path, props)
	}
	return props, nil
}

// ExtractClass resolves one type name into a full ModelClass, or nil
// when nothing was found
func (e *Engine) ExtractClass(fullyQualifiedTypeName, searchRoot string) (*model.ModelClass, error) {
	props, err := e.ExtractProperties(fullyQualifiedTypeName, searchRoot)
	if err != nil {
		return nil, err
	}

	_, className := model.SplitTypeName(fullyQualifiedTypeName)
	path, _ := finder.FindClassFile(className, searchRoot, e.cfg.Project.ModelDirs, e.cfg.Analysis.ExcludeDirs)

	return &model.ModelClass{
		TypeName:   fullyQualifiedTypeName,
		ClassName:  className,
		File:       path,
		Properties: props,
	}, nil
}

// BuildInventory scans every .cs file under root, extracts the model
// class each file declares (one class per file, named like the file, by
// convention), and aggregates the results for the reports. onFile, if
// non-nil, is called once per scanned file for progress tracking.
func (e *Engine) BuildInventory(root string, onFile func()) (*model.Inventory, error) {
	files, err := finder.ScanDirectory(root, e.cfg.Analysis.ExcludeDirs)
	if err != nil {
		return nil, err
	}

	inv := model.NewInventory()
	inv.AnalysisDate = time.Now().Format("2006-01-02")

	for _, path := range files {
		if onFile != nil {
			onFile()
		}

		content, err := finder.ReadFile(path)
		if err != nil {
			logger.Warn("Failed to read file %s: %v", path, err)
			continue
		}

		className := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		props := csparser.ExtractProperties(content, className)
		if len(props) == 0 {
			continue
		}

		typeName := className
		if ns := csparser.ExtractNamespace(content); ns != "" {
			typeName = ns + "." + className
		}

		inv.Add(&model.ModelClass{
			TypeName:   typeName,
			ClassName:  className,
			File:       path,
			Properties: props,
		})

		if e.cache != nil {
			e.cache.Set(typeName, path, props)
		}
	}

	logger.Debug("[ENGINE] Inventory: %d classes, %d properties", inv.TotalClasses, inv.TotalProperties)
	return inv, nil
}
