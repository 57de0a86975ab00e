package configs

import _ "embed"

// ApplicationYAML is the bundled default of application.yml, used when PROPERTIES_FILE_PATH is unset
// and the file is not found next to the binary.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the bundled default of messages.yml.
//
//go:embed messages.yml
var MessagesYAML []byte
