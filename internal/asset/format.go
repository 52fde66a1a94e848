// Package asset loads 3D model files and reduces them to point/index
// mesh data for bounding and rendering. Parsing itself is delegated to
// format libraries; this package only dispatches and converts.
package asset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Load boundary errors. All are recovered by the viewer, which falls
// back to the placeholder cube; none is fatal to the session.
var (
	ErrUnsupportedFormat = errors.New("unsupported model format")
	ErrAssetNotFound     = errors.New("model file not found")
	ErrParseFailure      = errors.New("model file could not be parsed")
)

// Format identifies a supported model file format. It is resolved once
// at load time from the file extension.
type Format int

const (
	FormatGLTF Format = iota
	FormatGLB
	FormatOBJ
	FormatDAE
)

// String returns the conventional extension for the format.
func (f Format) String() string {
	switch f {
	case FormatGLTF:
		return "gltf"
	case FormatGLB:
		return "glb"
	case FormatOBJ:
		return "obj"
	case FormatDAE:
		return "dae"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// DetectFormat resolves the format from the file extension,
// case-insensitive. Unrecognized extensions return ErrUnsupportedFormat.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf":
		return FormatGLTF, nil
	case ".glb":
		return FormatGLB, nil
	case ".obj":
		return FormatOBJ, nil
	case ".dae":
		return FormatDAE, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
