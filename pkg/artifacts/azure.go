package artifacts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/JaimeStill/courier/pkg/lifecycle"
)

type azure struct {
	client    *azblob.Client
	container string
	logger    *slog.Logger

	// serializes version assignment per artifact name
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAzure creates a Store backed by Azure Blob Storage. Each artifact version
// is stored as a separate blob under the key "<name>/v<version>".
// The client is validated here but no connection is made until Start.
func NewAzure(cfg *Config, logger *slog.Logger) (Store, error) {
	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &azure{
		client:    client,
		container: cfg.ContainerName,
		logger:    logger.With("system", "artifacts"),
		locks:     make(map[string]*sync.Mutex),
	}, nil
}

func (a *azure) Start(lc *lifecycle.Coordinator) error {
	a.logger.Info("starting artifact store")

	lc.OnStartup(func() {
		_, err := a.client.CreateContainer(lc.Context(), a.container, nil)
		if err != nil {
			if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
				a.logger.Error("artifact container initialization failed", "error", err)
				return
			}
		}

		a.logger.Info("artifact container ready", "container", a.container)
	})

	return nil
}

func (a *azure) Save(ctx context.Context, name string, data []byte, contentType string) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}

	lock := a.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	version, err := a.nextVersion(ctx, name)
	if err != nil {
		return 0, err
	}

	opts := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	key := versionKey(name, version)
	if _, err := a.client.UploadStream(ctx, a.container, key, bytes.NewReader(data), opts); err != nil {
		return 0, fmt.Errorf("upload artifact %s: %w", key, err)
	}

	return version, nil
}

func (a *azure) Load(ctx context.Context, name string, version int) (*Artifact, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	key := versionKey(name, version)
	resp, err := a.client.DownloadStream(ctx, a.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download artifact %s: %w", key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", key, err)
	}

	contentType := ""
	if resp.ContentType != nil {
		contentType = *resp.ContentType
	}

	return &Artifact{
		Name:        name,
		Version:     version,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (a *azure) nameLock(name string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	lock, ok := a.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[name] = lock
	}
	return lock
}

// nextVersion scans existing version keys under the name prefix and returns
// max+1, or 0 when the name has never been saved.
func (a *azure) nextVersion(ctx context.Context, name string) (int, error) {
	prefix := name + "/v"
	pager := a.client.NewListBlobsFlatPager(a.container, &azblob.ListBlobsFlatOptions{
		Prefix: &prefix,
	})

	next := 0
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("list artifact versions %s: %w", name, err)
		}

		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}
			suffix := strings.TrimPrefix(*item.Name, prefix)
			v, err := strconv.Atoi(suffix)
			if err != nil {
				continue
			}
			if v+1 > next {
				next = v + 1
			}
		}
	}

	return next, nil
}

func versionKey(name string, version int) string {
	return fmt.Sprintf("%s/v%d", name, version)
}
