package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	baseURL = "https://apis.map.qq.com"

	// 路径规划
	bicyclingURL = "/ws/direction/v1/bicycling/" // 骑行
	drivingURL   = "/ws/direction/v1/driving/"   // 驾车
)

// TencentMapClient 腾讯地图客户端
type TencentMapClient struct {
	key        string
	httpClient *http.Client
}

// TencentMapClientInterface 腾讯地图客户端接口
type TencentMapClientInterface interface {
	// GetBicyclingRoute 获取骑行路线（骑手用）
	GetBicyclingRoute(ctx context.Context, from, to Location) (*RouteResult, error)
	// GetDrivingRoute 获取驾车路线（汽车配送用）
	GetDrivingRoute(ctx context.Context, from, to Location) (*RouteResult, error)
}

// Location 位置坐标
type Location struct {
	Lat float64 `json:"lat"` // 纬度
	Lng float64 `json:"lng"` // 经度
}

// String 返回 "纬度,经度" 格式
func (l Location) String() string {
	return fmt.Sprintf("%f,%f", l.Lat, l.Lng)
}

// RouteResult 路径规划结果
type RouteResult struct {
	Distance int `json:"distance"` // 距离（米）
	Duration int `json:"duration"` // 时间（秒）
}

// NewTencentMapClient 创建腾讯地图客户端
func NewTencentMapClient(key string) *TencentMapClient {
	return &TencentMapClient{
		key: key,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type routeAPIResult struct {
	Routes []struct {
		Distance int `json:"distance"`
		Duration int `json:"duration"`
	} `json:"routes"`
}

// GetBicyclingRoute 获取骑行路线
func (c *TencentMapClient) GetBicyclingRoute(ctx context.Context, from, to Location) (*RouteResult, error) {
	return c.getRoute(ctx, bicyclingURL, from, to)
}

// GetDrivingRoute 获取驾车路线
func (c *TencentMapClient) GetDrivingRoute(ctx context.Context, from, to Location) (*RouteResult, error) {
	return c.getRoute(ctx, drivingURL, from, to)
}

func (c *TencentMapClient) getRoute(ctx context.Context, apiURL string, from, to Location) (*RouteResult, error) {
	params := url.Values{}
	params.Set("from", from.String())
	params.Set("to", to.String())
	params.Set("key", c.key)

	reqURL := baseURL + apiURL + "?" + params.Encode()

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var result routeAPIResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}

	if len(result.Routes) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	return &RouteResult{
		Distance: result.Routes[0].Distance,
		Duration: result.Routes[0].Duration,
	}, nil
}

func (c *TencentMapClient) doRequest(ctx context.Context, reqURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if apiResp.Status != 0 {
		return nil, fmt.Errorf("api error: status=%d message=%s", apiResp.Status, apiResp.Message)
	}

	return apiResp.Result, nil
}
