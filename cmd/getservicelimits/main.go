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

// getservicelimits hosts the Pub/Sub push endpoint outside of Cloud Functions
package main

import (
	"context"
	"log"
	"os"

	"github.com/BrunoReboul/servicelimits/services/getservicelimits"
	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	var global getservicelimits.Global
	if err := getservicelimits.Initialize(context.Background(), &global); err != nil {
		log.Fatalf("getservicelimits.Initialize %v", err)
	}
	gin.SetMode(gin.ReleaseMode)
	r := newRouter(&global)
	log.Printf("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
