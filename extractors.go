package ecaplugin

import (
	_ "github.com/ecatools/ecaplugin/internal/ardour2"  // Register Ardour 2 extractor
	_ "github.com/ecatools/ecaplugin/internal/ardour3"  // Register Ardour 3 extractor
	_ "github.com/ecatools/ecaplugin/internal/jackrack" // Register JACK Rack extractor
)
