// Package models holds the types shared by every layer of the resolver: the
// configuration [Tree], [Path] addressing, value normalization, the
// [Configurable] section capability and the error taxonomy of a resolution.
package models
