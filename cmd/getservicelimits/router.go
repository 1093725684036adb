// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"net/http"

	"github.com/BrunoReboul/servicelimits/services/getservicelimits"
	"github.com/gin-gonic/gin"
)

const pushPath = "/_ah/push-handlers/receive_message"

func newRouter(global *getservicelimits.Global) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST(pushPath, func(c *gin.Context) {
		getservicelimits.EntryPoint(c.Writer, c.Request, global)
	})
	return r
}
