package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           modelprobe API
// @version         1.0
// @description     HTTP API for classifying speech-model directories.
//
// @contact.name   modelprobe maintainers
// @contact.url    https://github.com/your-org/modelprobe
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
