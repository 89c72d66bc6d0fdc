// ABOUTME: fontconfig rule document rendering
// ABOUTME: Fills the fixed serif/sans-serif/monospace template with family names
package fontconf

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// documentTemplate takes the serif, sans-serif and monospace families in that order.
const documentTemplate = `<?xml version="1.0"?>
<!DOCTYPE fontconfig SYSTEM "fonts.dtd">
<fontconfig>
    <match target="pattern">
        <test qual="any" name="family">
            <string>serif</string>
        </test>
        <edit name="family" mode="prepend" binding="strong">
            <string>%s</string>
        </edit>
    </match>
    <match target="pattern">
        <test qual="any" name="family">
            <string>sans-serif</string>
        </test>
        <edit name="family" mode="prepend" binding="strong">
            <string>%s</string>
        </edit>
    </match>
    <match target="pattern">
        <test qual="any" name="family">
            <string>monospace</string>
        </test>
        <edit name="family" mode="prepend" binding="strong">
            <string>%s</string>
        </edit>
    </match>
</fontconfig>
`

// GenerateXML renders the rule file that prepends each family to its
// generic name with strong binding. Names are XML-escaped.
func GenerateXML(sans, serif, monospace string) string {
	return fmt.Sprintf(documentTemplate, escape(serif), escape(sans), escape(monospace))
}

func escape(s string) string {
	var sb strings.Builder
	// strings.Builder never returns a write error
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
