// Package configclient implements the Configuration (ACI) service client:
// XML-RPC-shaped request/response framing over a single persistent
// connection, login, and the OpenFilter/GetFilterResults/CloseFilter paging
// trio used to enumerate system objects.
package configclient

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// envelope wraps a method call or return in its interface element, e.g.
// <IConfiguration><OpenFilter><call>...</call></OpenFilter></IConfiguration>.
// The Config service has no single top-level schema, so requests are built
// and responses are picked apart as raw XML rather than through one
// generated envelope type.
func buildRequest(iface, method string, call any) (string, error) {
	if call == nil {
		return fmt.Sprintf("<%s><%s></%s></%s>", iface, method, method, iface), nil
	}

	var body bytes.Buffer
	enc := xml.NewEncoder(&body)
	if err := enc.EncodeElement(call, xml.StartElement{Name: xml.Name{Local: method}}); err != nil {
		return "", fmt.Errorf("configclient: encode %s.%s call: %w", iface, method, err)
	}

	return fmt.Sprintf("<%s>%s</%s>", iface, body.String(), iface), nil
}

// extractMethod locates the <method>...</method> element inside a raw
// <interface>...</interface> response envelope and unmarshals it into dst.
func extractMethod(response []byte, iface, method string, dst any) error {
	type wrapper struct {
		XMLName xml.Name
		Inner   []byte `xml:",innerxml"`
	}

	dec := xml.NewDecoder(bytes.NewReader(response))
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("configclient: %s.%s response did not contain a <%s> element", iface, method, method)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != method {
			continue
		}
		if err := dec.DecodeElement(dst, &start); err != nil {
			return fmt.Errorf("configclient: decode %s.%s response: %w", iface, method, err)
		}
		return nil
	}
}
