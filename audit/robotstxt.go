package audit

import (
	"context"
	"net/http"

	"github.com/temoto/robotstxt"
)

func getRobotsData(ctx context.Context, client *http.Client, baseURL, agent string) (data *robotstxt.RobotsData, err error) {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/robots.txt", nil)
	if errRequest != nil {
		return nil, errRequest
	}
	req.Header.Set("User-Agent", agent)
	resp, errGet := client.Do(req)
	if errGet != nil {
		return nil, errGet
	}
	defer resp.Body.Close()
	return robotstxt.FromResponse(resp)
}
