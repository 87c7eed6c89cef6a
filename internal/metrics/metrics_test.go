// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSetConfigInfo(t *testing.T) {
	SetConfigInfo(Info{Name: "Orders API", Slug: "orders-api", Version: "v1", Scheme: "http", Prefix: "/api/v1", Docs: true})
	SetConfigInfo(Info{Name: "Orders API", Slug: "orders-api", Version: "v2", Scheme: "https", Prefix: "/api/v2", Docs: false})

	assert.Equal(t, 1, testutil.CollectAndCount(ConfigInfo))

	expected := `
# HELP apiconf_config_info Resolved configuration of the running service.
# TYPE apiconf_config_info gauge
apiconf_config_info{docs="false",name="Orders API",prefix="/api/v2",scheme="https",slug="orders-api",version="v2"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(ConfigInfo, strings.NewReader(expected)))
}

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "200"))

	ObserveRequest("GET", 200, 0.01)
	ObserveRequest("GET", 200, 0.02)

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "200")))
}
