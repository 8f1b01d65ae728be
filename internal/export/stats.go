package export

import (
	"encoding/json"
	"os"

	"github.com/genreforge/genreforge/pkg/constants"
	pkgerrors "github.com/genreforge/genreforge/pkg/errors"
	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/logging"
)

// Stats writes dataset statistics to path as indented JSON.
func Stats(path string, stats genres.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return pkgerrors.WrapExport("json", path, err)
	}

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return pkgerrors.WrapIO("write", path, err)
	}

	logging.Debug().Str("path", path).Int("total_genres", stats.Total).Msg("statistics written")
	return nil
}
