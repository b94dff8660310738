// Package project loads a vidmod project directory (a manifest.yml plus
// whatever node-specific resources it references) into a ready-to-run
// graph.NodeGraph. See spec.md §6 and
// original_source/vidmod-core/src/spec/manifest.rs for the exact shape.
package project

// ManifestNode is one entry of the manifest's `nodes` map: the plugin
// type name to instantiate, plus its string-keyed arguments.
type ManifestNode struct {
	Name string            `yaml:"name"`
	Args map[string]string `yaml:"args"`
}

// ManifestLink is one entry of the manifest's `links` list: a
// (node-name, port-name) pair on each side.
type ManifestLink struct {
	From [2]string `yaml:"from"`
	To   [2]string `yaml:"to"`
}

// ProjectManifest is the full decoded shape of manifest.yml. Unknown
// fields anywhere in the document are a decode error (strict decoding,
// §4.8) — this is the Go analogue of the original's
// `#[serde(deny_unknown_fields)]`.
type ProjectManifest struct {
	Nodes map[string]ManifestNode `yaml:"nodes"`
	Links []ManifestLink          `yaml:"links"`
}
