package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrNoTranslations    = errors.New("no translations loaded")
	ErrInvalidCatalog    = errors.New("invalid translation catalog")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")
	ErrLoadingCancelled  = errors.New("loading translations cancelled")
)
