//go:build e2e

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package greeter_test

import (
	"io"
	"net/http"
	"os/exec"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

const baseURL = "http://localhost:3000"

func request(method, path string) (int, string) {
	req, err := http.NewRequest(method, baseURL+path, strings.NewReader(""))
	Expect(err).NotTo(HaveOccurred())
	resp, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return resp.StatusCode, string(body)
}

var _ = Describe("greeter", func() {
	var session *gexec.Session

	BeforeEach(func() {
		var err error
		session, err = gexec.Start(exec.Command(cliPath, "serve"), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session.Out, "10s").Should(gbytes.Say("Server listening on port 3000"))
	})

	AfterEach(func() {
		session.Kill()
		Eventually(session).Should(gexec.Exit())
	})

	Context("GET /", func() {
		It("should say hello", func() {
			status, body := request(http.MethodGet, "/")
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(Equal("Hello world"))
		})
	})

	Context("GET /evening", func() {
		It("should say good evening", func() {
			status, body := request(http.MethodGet, "/evening")
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(Equal("Good evening"))
		})
	})

	Context("unregistered routes", func() {
		It("should not find an unknown path", func() {
			status, _ := request(http.MethodGet, "/unknown")
			Expect(status).To(Equal(http.StatusNotFound))
		})

		It("should not find POST /", func() {
			status, _ := request(http.MethodPost, "/")
			Expect(status).To(Equal(http.StatusNotFound))
		})
	})

	Context("a second instance", func() {
		It("should fail to bind port 3000 and leave the first instance serving", func() {
			second, err := gexec.Start(exec.Command(cliPath), GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(second, "10s").Should(gexec.Exit(1))
			Expect(second.Err).To(gbytes.Say("port 3000 is already in use"))

			Expect(session.ExitCode()).To(Equal(-1), "the first instance should still be running")
			status, body := request(http.MethodGet, "/")
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(Equal("Hello world"))
		})
	})

	Context("loose matching", func() {
		It("should match paths like the original server", func() {
			status, body := request(http.MethodGet, "/Evening/")
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(Equal("Good evening"))

			status, body = request(http.MethodHead, "/")
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(BeEmpty())
		})
	})
})
