package asset

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mlanner/orbview/internal/logger"
)

// Load reads a model file and returns its meshes. The format is
// resolved once from the extension before touching the file. Errors are
// one of ErrUnsupportedFormat, ErrAssetNotFound, or ErrParseFailure;
// the caller recovers all of them with the placeholder cube.
func Load(path string) (MeshSet, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
	}

	logger.Debug("decoding model",
		zap.String("path", path),
		zap.Stringer("format", format),
	)

	var set MeshSet
	switch format {
	case FormatGLTF, FormatGLB:
		set, err = decodeGLTF(path)
	case FormatOBJ:
		set, err = decodeOBJ(path)
	case FormatDAE:
		set, err = decodeDAE(path)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("meshes", len(set)),
		zap.Int("triangles", set.TriangleCount()),
	)
	return set, nil
}
