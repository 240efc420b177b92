package internal

import (
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Config file keys and the command line options they correspond to
var configKeys = map[string]string{
	"BREW_FORMAT": "format",
	"BREW_COLORS": "colors",
}

// ConfigFileArgs reads a dotenv style config file and turns its settings into
// command line options:
//
//	BREW_FORMAT=rgb
//	BREW_COLORS=256
//
// becomes --colors=256 --format=rgb. Unknown keys are logged and skipped.
func ConfigFileArgs(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	keys := maps.Keys(values)
	slices.Sort(keys)

	args := make([]string, 0, len(keys))
	for _, key := range keys {
		option, found := configKeys[key]
		if !found {
			log.Warnf("Ignoring unknown key %s in config file %s", key, path)
			continue
		}

		args = append(args, fmt.Sprintf("--%s=%s", option, values[key]))
	}

	log.Debugf("Options from config file %s: %v", path, args)
	return args, nil
}
