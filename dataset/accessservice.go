package dataset

import "encoding/json"

// AccessService is one dcat:DataService attached to a distribution. The
// whole list is carried on the resource as a JSON blob (AccessServices),
// so harvested services survive a serialize round trip unchanged.
type AccessService struct {
	URI              string   `json:"uri"`
	AccessServiceRef string   `json:"access_service_ref,omitempty"`
	Availability     string   `json:"availability,omitempty"`
	Title            string   `json:"title,omitempty"`
	EndpointDesc     string   `json:"endpoint_description,omitempty"`
	License          string   `json:"license,omitempty"`
	AccessRights     string   `json:"accessRights,omitempty"`
	Description      string   `json:"description,omitempty"`
	EndpointURL      []string `json:"endpoint_url,omitempty"`
	ServesDataset    []string `json:"serves_dataset,omitempty"`
}

// Value looks up an access-service field by its record key.
func (a *AccessService) Value(key string) (any, bool) {
	var s string
	switch key {
	case "uri":
		s = a.URI
	case "access_service_ref":
		s = a.AccessServiceRef
	case "availability":
		s = a.Availability
	case "title":
		s = a.Title
	case "endpoint_description":
		s = a.EndpointDesc
	case "license":
		s = a.License
	case "accessRights":
		s = a.AccessRights
	case "description":
		s = a.Description
	case "endpoint_url":
		if len(a.EndpointURL) == 0 {
			return nil, false
		}
		return a.EndpointURL, true
	case "serves_dataset":
		if len(a.ServesDataset) == 0 {
			return nil, false
		}
		return a.ServesDataset, true
	default:
		return nil, false
	}
	if s == "" {
		return nil, false
	}
	return s, true
}

// StringValue is Value narrowed to string results.
func (a *AccessService) StringValue(key string) string {
	v, ok := a.Value(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// DecodeAccessServices parses the JSON blob stored on a resource. An
// empty blob yields an empty list; malformed JSON is an error the caller
// usually swallows.
func DecodeAccessServices(blob string) ([]*AccessService, error) {
	if blob == "" {
		return nil, nil
	}
	var services []*AccessService
	if err := json.Unmarshal([]byte(blob), &services); err != nil {
		return nil, err
	}
	return services, nil
}

// EncodeAccessServices renders the list back to the stored JSON shape.
func EncodeAccessServices(services []*AccessService) (string, error) {
	if len(services) == 0 {
		return "", nil
	}
	encoded, err := json.Marshal(services)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
