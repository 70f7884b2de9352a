package engine

import (
	"os"
	"regexp"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// SourceConfig is the YAML form of a discovery source. The optional pattern
// is a regexp matched against each hit's title, link, and snippet.
type SourceConfig struct {
	Name      string   `yaml:"name"`
	EventType string   `yaml:"event_type"`
	Location  string   `yaml:"location,omitempty"`
	Queries   []string `yaml:"queries"`
	Pattern   string   `yaml:"pattern,omitempty"`
}

// sourceFile is the top-level layout of an operator-edited sources file.
type sourceFile struct {
	Sources      []SourceConfig `yaml:"sources"`
	Associations []Association  `yaml:"associations"`
}

// LoadSources reads custom discovery sources and associations from a YAML
// file. Sources missing a name or queries are rejected; a missing pattern
// means every hit is accepted.
func LoadSources(path string) ([]Source, []Association, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "engine: read sources file %s", path)
	}

	var file sourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, eris.Wrap(err, "engine: parse sources file")
	}

	sources := make([]Source, 0, len(file.Sources))
	for _, sc := range file.Sources {
		if sc.Name == "" || len(sc.Queries) == 0 {
			return nil, nil, eris.Errorf("engine: source %q needs a name and at least one query", sc.Name)
		}

		src := Source{
			Name:      sc.Name,
			EventType: model.EventType(sc.EventType),
			Location:  sc.Location,
			Queries:   sc.Queries,
		}
		if sc.EventType == "" {
			src.EventType = model.EventConference
		}
		if sc.Pattern != "" {
			re, err := regexp.Compile(sc.Pattern)
			if err != nil {
				return nil, nil, eris.Wrapf(err, "engine: source %q pattern", sc.Name)
			}
			src.Accept = func(r SearchResult) bool {
				return re.MatchString(r.Title + " " + r.Link + " " + r.Snippet)
			}
		}
		sources = append(sources, src)
	}

	for _, a := range file.Associations {
		if a.Name == "" || a.URL == "" {
			return nil, nil, eris.New("engine: associations need a name and url")
		}
	}

	return sources, file.Associations, nil
}
