// Package content holds the static data the server exposes: the
// multi-language greeting templates and the server metadata record.
// Everything here is built once at process start and never mutated.
package content

import "time"

// Server identity reported to clients and embedded in the info resource.
const (
	ServerName    = "Hello World MCP Server"
	ServerVersion = "1.0.0"
	Description   = "A simple MCP server for learning purposes"
)

// DefaultLanguage is the fallback when a requested greeting language
// is missing or unrecognized.
const DefaultLanguage = "en"

// languages lists the greeting language codes in their defined order.
// The prompt footer depends on this order, so it is a slice, not a map
// iteration.
var languages = []string{"en", "de", "es"}

var greetings = map[string]string{
	"en": `Hello! I'm a friendly MCP server built for learning purposes.
I can help you understand how MCP servers work by demonstrating:
- Tools: Functions you can call (like getting the time)
- Resources: Data I can provide (like server information)
- Prompts: Templates I can generate (like this greeting)

Try calling my tools or asking for my resources!`,

	"de": `Hallo! Ich bin ein freundlicher MCP Server, der zu Lernzwecken erstellt wurde.
Ich kann dir helfen zu verstehen, wie MCP Server funktionieren, indem ich demonstriere:
- Tools: Funktionen, die du aufrufen kannst (wie die Uhrzeit abfragen)
- Resources: Daten, die ich bereitstellen kann (wie Server-Informationen)
- Prompts: Vorlagen, die ich generieren kann (wie diese Begrüßung)

Probiere meine Tools aus oder frage nach meinen Ressourcen!`,

	"es": `¡Hola! Soy un servidor MCP amigable creado con fines de aprendizaje.
Puedo ayudarte a entender cómo funcionan los servidores MCP demostrando:
- Tools: Funciones que puedes llamar (como obtener la hora)
- Resources: Datos que puedo proporcionar (como información del servidor)
- Prompts: Plantillas que puedo generar (como este saludo)

¡Prueba mis herramientas o pregunta por mis recursos!`,
}

// Languages returns the supported greeting language codes in order.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// Greeting returns the greeting template for the given language code.
func Greeting(code string) (string, bool) {
	text, ok := greetings[code]
	return text, ok
}

// Features lists the capability names advertised in the info resource.
func Features() []string {
	return []string{"tools", "resources", "prompts"}
}

// Metadata is the server information record served at server://info.
// Field order here is the key order of the serialized JSON.
type Metadata struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	ToolsCount  int      `json:"tools_count"`
	Created     string   `json:"created"`
}

// Snapshot is a per-read copy of Metadata carrying the timestamp of
// the read. The base Metadata is never mutated.
type Snapshot struct {
	Metadata
	InfoRequestedAt string `json:"info_requested_at"`
}

// NewMetadata builds the metadata record with the given process start
// time. Called once at startup.
func NewMetadata(created time.Time) Metadata {
	return Metadata{
		Name:        ServerName,
		Version:     ServerVersion,
		Description: Description,
		Features:    Features(),
		ToolsCount:  3,
		Created:     created.UTC().Format(time.RFC3339Nano),
	}
}

// Snapshot returns a copy of the metadata with info_requested_at set
// to the given instant.
func (m Metadata) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Metadata:        m,
		InfoRequestedAt: now.UTC().Format(time.RFC3339Nano),
	}
}
