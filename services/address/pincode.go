package address

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hausly/models"
)

// httpPincodeResolver resolves pincodes against a postal lookup API.
type httpPincodeResolver struct {
	base   string
	client *http.Client
}

// NewHTTPPincodeResolver returns a PincodeResolver calling the configured
// lookup endpoint. base is the URL prefix the pincode is appended to.
func NewHTTPPincodeResolver(base string) PincodeResolver {
	return &httpPincodeResolver{
		base:   base,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *httpPincodeResolver) Resolve(ctx context.Context, pincode string) (*models.PincodeInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.base+pincode, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("pincode lookup returned " + resp.Status)
	}

	var payload []struct {
		Status     string `json:"Status"`
		PostOffice []struct {
			District string `json:"District"`
			State    string `json:"State"`
		} `json:"PostOffice"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 || payload[0].Status != "Success" || len(payload[0].PostOffice) == 0 {
		return nil, errors.New("pincode not found")
	}

	return &models.PincodeInfo{
		City:  payload[0].PostOffice[0].District,
		State: payload[0].PostOffice[0].State,
	}, nil
}
