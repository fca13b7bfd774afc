// Package tmx decodes Tiled TMX map documents into plain in-memory
// structures: maps, tilesets, tile layers, and object groups.
//
// Parsing is a single eager pass over the document. External tilesets
// referenced by a map are loaded from sibling files when the map's own
// location is known (ParseMapWithPath, ParseMapFile). The package does not
// validate GID ranges against tilesets and does not render anything.
package tmx
