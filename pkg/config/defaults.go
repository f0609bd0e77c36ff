// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

const (
	ProfileProduction = "production"
	ProfileLocalhost  = "localhost"
)

// DefaultEndpoints returns the compiled-in endpoint values
func DefaultEndpoints() Endpoints {
	return Endpoints{
		LocalBackend:       "http://localhost:8080",
		LocalFrontend:      "http://localhost:3000",
		ProductionBackend:  "https://eyespire-back-end.onrender.com",
		ProductionFrontend: "https://eyespire.vercel.app",
	}
}

// DefaultFiles returns the compiled-in target file list
func DefaultFiles() []string {
	return []string{
		"src/main/resources/application.properties",

		"src/main/java/org/eyespire/eyespireapi/controller/AppointmentController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/AuthController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/DoctorController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/MedicalRecordController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/PaymentHistoryController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/OrderPaymentController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/OrderController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/PayOSController.java",
		"src/main/java/org/eyespire/eyespireapi/controller/UserController.java",

		"src/main/java/org/eyespire/eyespireapi/config/AppConfig.java",
		"src/main/java/org/eyespire/eyespireapi/config/WebSocketConfig.java",

		"src/main/java/org/eyespire/eyespireapi/service/EmailService.java",
		"src/main/java/org/eyespire/eyespireapi/service/OrderPaymentService.java",
		"src/main/java/org/eyespire/eyespireapi/service/UserService.java",
	}
}

// BuiltinProfiles returns the "production" and "localhost" profiles for e.
//
// The production profile also folds the secondary dev frontend port into the
// production frontend, so flipping back with the localhost profile is not an
// exact inverse for files that used it.
func BuiltinProfiles(e Endpoints) []Profile {
	return []Profile{
		{
			Name:        ProfileProduction,
			Description: "point local backend and frontend urls at production",
			Rules: []Rule{
				{
					Old:  "google.redirect.uri=" + e.LocalFrontend + "/auth/google/callback",
					New:  "google.redirect.uri=" + e.ProductionFrontend + "/auth/google/callback",
					File: "**/application.properties",
				},
				{Old: e.LocalFrontend, New: e.ProductionFrontend},
				{Old: "http://localhost:3001", New: e.ProductionFrontend},
				{Old: e.LocalBackend, New: e.ProductionBackend},
			},
		},
		{
			Name:        ProfileLocalhost,
			Description: "point production backend and frontend urls back at localhost",
			Rules: []Rule{
				{Old: e.ProductionBackend, New: e.LocalBackend},
				{Old: e.ProductionFrontend, New: e.LocalFrontend},
			},
		},
	}
}
