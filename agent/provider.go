// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/openp2ptrade/dispute-node/config/node"
	"github.com/rs/zerolog/log"
)

type AgentListProvider interface {
	AgentList(ctx context.Context) (AgentList, error)
}

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewAgentListProvider reads the agent list from an S3 compatible bucket when one is
// configured and from the configured URL otherwise.
func NewAgentListProvider(config node.AgentListConfiguration, client HttpClient) (AgentListProvider, error) {
	var decrypter *AESEncryption
	if config.EncryptionKey != "" {
		var err error
		decrypter, err = NewAESEncryption([]byte(config.EncryptionKey))
		if err != nil {
			return nil, err
		}
	}

	if config.BucketName == "" {
		return &urlProvider{
			url:       config.Url,
			client:    client,
			decrypter: decrypter,
		}, nil
	}

	minioClient, err := minio.New(config.ServiceAddress, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecKey, ""),
		Secure: true,
		Region: config.BucketRegion,
	})
	if err != nil {
		return nil, err
	}

	return &bucketProvider{
		client:       minioClient,
		documentName: config.DocumentName,
		bucketName:   config.BucketName,
		decrypter:    decrypter,
	}, nil
}

type urlProvider struct {
	url       string
	client    HttpClient
	decrypter *AESEncryption
}

func (p *urlProvider) AgentList(ctx context.Context) (AgentList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return AgentList{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Err(err).Msg("unable to fetch agent list")
		return AgentList{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AgentList{}, fmt.Errorf("unexpected agent list response status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Err(err).Msg("error on reading agent list data")
		return AgentList{}, err
	}

	return processAgentListDocument(data, p.decrypter)
}

type bucketProvider struct {
	client       *minio.Client
	documentName string
	bucketName   string
	decrypter    *AESEncryption
}

func (p *bucketProvider) AgentList(ctx context.Context) (AgentList, error) {
	obj, err := p.client.GetObject(ctx, p.bucketName, p.documentName, minio.GetObjectOptions{})
	if err != nil {
		log.Err(err).Msg("unable to get agent list object")
		return AgentList{}, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		log.Err(err).Msg("error on reading agent list data")
		return AgentList{}, err
	}

	return processAgentListDocument(data, p.decrypter)
}

func processAgentListDocument(data []byte, decrypter *AESEncryption) (AgentList, error) {
	if decrypter != nil {
		decrypted, err := decrypter.Decrypt(strings.TrimSpace(string(data)))
		if err != nil {
			return AgentList{}, fmt.Errorf("unable to decrypt agent list: %w", err)
		}
		data = decrypted
	}

	rawList := &RawAgentList{}
	err := json.Unmarshal(data, rawList)
	if err != nil {
		log.Err(err).Msg("unable to unmarshal agent list data")
		return AgentList{}, err
	}

	return ProcessRawAgentList(rawList)
}
