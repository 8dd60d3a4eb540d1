package cli

import (
	"fmt"

	"github.com/semmy-space/credman/internal/config"
	"github.com/semmy-space/credman/pkg/wincred"
)

// persistScopes maps the CLI-facing scope names onto the native persist
// tags.
var persistScopes = map[string]uint32{
	"session":       wincred.CredPersistSession,
	"local-machine": wincred.CredPersistLocalMachine,
	"enterprise":    wincred.CredPersistEnterprise,
}

// persistTag resolves a scope name to its native tag.
func persistTag(name string) (uint32, error) {
	tag, ok := persistScopes[name]
	if !ok {
		return 0, fmt.Errorf("unknown persist scope: %s (valid: session, local-machine, enterprise)", name)
	}
	return tag, nil
}

// persistName renders a native persist tag for display. Unknown tags pass
// through numerically since the store round-trips them opaquely.
func persistName(tag uint32) string {
	for name, t := range persistScopes {
		if t == tag {
			return name
		}
	}
	return fmt.Sprintf("%d", tag)
}

// fullTarget prepends the configured target prefix, the namespace under
// which this CLI keeps its entries apart from other applications'.
func fullTarget(cfg *config.Config, target string) string {
	return cfg.TargetPrefix + target
}

// credentialRow flattens a credential into display strings. The secret is
// redacted unless showSecret is set; undecodable blobs are labelled
// rather than dumped raw.
func credentialRow(cred wincred.Credential, showSecret bool) map[string]string {
	row := map[string]string{
		"target":  stringField(cred, "TargetName"),
		"user":    stringField(cred, "UserName"),
		"comment": stringField(cred, "Comment"),
	}
	if typ, ok := cred["Type"].(uint32); ok {
		row["type"] = fmt.Sprintf("%#x", typ)
	}
	if persist, ok := cred["Persist"].(uint32); ok {
		row["persist"] = persistName(persist)
	}

	blob, _ := cred["CredentialBlob"].([]byte)
	switch {
	case !showSecret:
		row["secret"] = "(redacted)"
	case len(blob) == 0:
		row["secret"] = ""
	default:
		text, err := wincred.DecodeBlob(blob)
		if err != nil {
			row["secret"] = fmt.Sprintf("(binary, %d bytes)", len(blob))
		} else {
			row["secret"] = text
		}
	}
	return row
}

func stringField(cred wincred.Credential, key string) string {
	s, _ := cred[key].(string)
	return s
}
