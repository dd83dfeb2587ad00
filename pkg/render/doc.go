// Package render defines the renderer contract shared by every document kind
// and a registry that resolves renderers by kind name. Concrete renderers live
// under pkg/renderers.
package render
