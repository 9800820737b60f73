// Package audit crawls a running directory site like a search engine bot
// and checks what it finds on every page.
package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/temoto/robotstxt"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/foomo/resinaro/config"
	"github.com/foomo/resinaro/vo"
)

var ErrNoTarget = errors.New("no target base url")

// NewClient does not follow redirects, the crawler records them and
// follows the location itself
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Crawl walks the site breadth first from the target paths. Every level is
// fetched with at most conf.Concurrency requests in flight, paced to
// conf.RequestsPerSecond.
func Crawl(ctx context.Context, conf config.Audit, client *http.Client) (status vo.Status, err error) {
	status = vo.Status{
		Results: map[string]vo.CrawlResult{},
		Started: time.Now(),
	}
	if conf.Target.BaseURL == "" {
		return status, ErrNoTarget
	}
	baseURL, errParse := url.Parse(conf.Target.BaseURL)
	if errParse != nil {
		return status, errParse
	}
	if client == nil {
		client = NewClient(10 * time.Second)
	}

	var robotsGroup *robotstxt.Group
	if !conf.IgnoreRobots {
		robotsData, errRobots := getRobotsData(ctx, client, strings.TrimRight(baseURL.String(), "/"), conf.Agent)
		if errRobots != nil {
			return status, fmt.Errorf("could not read robots.txt: %w", errRobots)
		}
		robotsGroup = robotsData.FindGroup(conf.Agent)
		robotForbiddenPath := []string{}
		for _, p := range conf.Target.Paths {
			if !robotsGroup.Test(p) {
				robotForbiddenPath = append(robotForbiddenPath, p)
			}
		}
		if len(robotForbiddenPath) > 0 {
			return status, errors.New("robots.txt does not allow access to the following path (you can either ignore robots or try as a different user agent): " + strings.Join(robotForbiddenPath, ", "))
		}
	}

	limit := rate.Inf
	if conf.RequestsPerSecond > 0 {
		limit = rate.Limit(conf.RequestsPerSecond)
	}
	limiter := rate.NewLimiter(limit, 1)
	concurrency := conf.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	ll := linkLimitations{
		depth:               conf.Depth,
		paging:              conf.Paging,
		ignorePathPrefixes:  conf.Ignore,
		includePathPrefixes: conf.Target.Paths,
		ignoreAllQueries:    conf.IgnoreAllQueries,
		ignoreQueriesWith:   conf.IgnoreQueriesWith,
	}

	seen := map[string]bool{}
	queue := []string{}
	for _, p := range conf.Target.Paths {
		startURL := baseURL.ResolveReference(&url.URL{Path: p}).String()
		if !seen[startURL] {
			seen[startURL] = true
			queue = append(queue, startURL)
		}
	}

	for len(queue) > 0 {
		level := queue
		queue = nil
		if conf.MaxPages > 0 && len(status.Results)+len(level) > conf.MaxPages {
			level = level[:conf.MaxPages-len(status.Results)]
		}
		results := make([]vo.CrawlResult, len(level))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, targetURL := range level {
			g.Go(func() error {
				if errWait := limiter.Wait(gctx); errWait != nil {
					return errWait
				}
				results[i] = scrape(gctx, client, conf.Agent, targetURL)
				return nil
			})
		}
		if errWait := g.Wait(); errWait != nil {
			status.Done = time.Now()
			return status, errWait
		}
		for _, result := range results {
			status.Results[result.TargetURL] = result
			if !conf.IgnoreRobots && strings.Contains(result.Structure.Robots, "nofollow") {
				continue
			}
			pageURL, errPageURL := url.Parse(result.TargetURL)
			if errPageURL != nil {
				continue
			}
			linkNextNormalized := ""
			if linkNext, errNext := normalizeLink(pageURL, result.Structure.LinkNext); errNext == nil && result.Structure.LinkNext != "" {
				linkNextNormalized = linkNext.String()
			}
			linkPrevNormalized := ""
			if linkPrev, errPrev := normalizeLink(pageURL, result.Structure.LinkPrev); errPrev == nil && result.Structure.LinkPrev != "" {
				linkPrevNormalized = linkPrev.String()
			}
			for link := range filterLinks(result.Links, pageURL, linkNextNormalized, linkPrevNormalized, ll, robotsGroup) {
				if !seen[link] {
					seen[link] = true
					queue = append(queue, link)
				}
			}
		}
		if conf.MaxPages > 0 && len(status.Results) >= conf.MaxPages {
			break
		}
		sort.Strings(queue)
	}
	status.Done = time.Now()
	return status, nil
}

func scrape(ctx context.Context, client *http.Client, agent, targetURL string) (result vo.CrawlResult) {
	result = vo.CrawlResult{
		TargetURL: targetURL,
		Time:      time.Now(),
	}
	start := time.Now()
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if errRequest != nil {
		result.Error = errRequest.Error()
		return result
	}
	req.Header.Set("User-Agent", agent)
	resp, errGet := client.Do(req)
	if errGet != nil {
		result.Error = errGet.Error()
		return result
	}
	defer resp.Body.Close()
	result.Code = resp.StatusCode
	result.Status = resp.Status
	result.ContentType = resp.Header.Get("Content-Type")

	if location := resp.Header.Get("Location"); location != "" {
		result.Location = location
		result.Links = vo.LinkList{location: 1}
	}
	if !strings.Contains(result.ContentType, "html") {
		_, _ = io.Copy(io.Discard, resp.Body)
		result.Duration = time.Since(start)
		return result
	}

	doc, errParse := Parse(resp.Body)
	result.Duration = time.Since(start)
	if errParse != nil {
		result.Error = errParse.Error()
		return result
	}
	if result.Links == nil {
		result.Links = ExtractLinks(doc)
	}
	structure, validations := Extract(doc)
	result.Structure = structure
	if result.Code == http.StatusOK {
		validations = append(validations, Check(structure)...)
		validations = append(validations, CheckMarkup(doc, DirectoryMarkup)...)
	}
	result.Validations = validations
	return result
}
