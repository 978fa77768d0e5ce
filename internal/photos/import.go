package photos

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database/mariadb"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/fingerprint"
)

// nearDuplicateThreshold is the dHash Hamming distance at or below which
// two imported files are reported as likely duplicates.
const nearDuplicateThreshold = 10

// DuplicatePair names two imported files whose perceptual hashes collide.
type DuplicatePair struct {
	FileA    string
	FileB    string
	Distance int
}

// ImportResult summarizes a directory import.
type ImportResult struct {
	Imported   int
	Duplicates []DuplicatePair
	Errors     []error
}

// isImageFile checks if a file has a supported image extension
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	supported := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".tiff": true,
		".tif":  true,
		".bmp":  true,
		".webp": true,
	}
	return supported[ext]
}

// PhotoUID derives a stable identifier from an absolute file path. The
// same file imported twice maps to the same photo row.
func PhotoUID(path string) string {
	sum := sha256.Sum256([]byte(filepath.ToSlash(path)))
	return fmt.Sprintf("ph%x", sum[:8])
}

// probeResult holds the result of probing a single file
type probeResult struct {
	index int
	photo database.Photo
	hash  uint64
	err   error
}

// ImportDirectory walks a directory tree, probes every image file with a
// bounded worker pool and registers the photos with the store. Files whose
// perceptual hashes collide are reported as likely duplicates.
func ImportDirectory(ctx context.Context, dir string, workers int, writer database.PhotoWriter) (*ImportResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var filePaths []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isImageFile(d.Name()) {
			filePaths = append(filePaths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk folder %s: %w", dir, err)
	}

	result := &ImportResult{}
	if len(filePaths) == 0 {
		return result, nil
	}

	if workers <= 0 {
		workers = 4
	}

	bar := progressbar.NewOptions(len(filePaths),
		progressbar.OptionSetDescription(fmt.Sprintf("Probing photos (%d workers)", workers)),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("photos"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	// Create channels for work distribution and results
	resultsChan := make(chan probeResult, len(filePaths))
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range filePaths {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()

			// Acquire semaphore
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			// Check if context is cancelled
			if ctx.Err() != nil {
				resultsChan <- probeResult{index: idx, err: ctx.Err()}
				bar.Add(1)
				return
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				resultsChan <- probeResult{index: idx, err: fmt.Errorf("failed to resolve %s: %w", path, err)}
				bar.Add(1)
				return
			}

			img, err := Open(abs)
			if err != nil {
				resultsChan <- probeResult{index: idx, err: fmt.Errorf("failed to probe %s: %w", path, err)}
				bar.Add(1)
				return
			}

			bounds := img.Bounds()
			resultsChan <- probeResult{
				index: idx,
				photo: database.Photo{
					UID:        PhotoUID(abs),
					SourcePath: abs,
					FileName:   filepath.Base(abs),
					Width:      bounds.Dx(),
					Height:     bounds.Dy(),
				},
				hash: fingerprint.DHash(img),
			}
			bar.Add(1)
		}(i, filePaths[i])
	}

	// Wait for all goroutines to complete and close results channel
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Collect results maintaining order
	results := make([]*probeResult, len(filePaths))
	for r := range resultsChan {
		results[r.index] = &r
	}
	fmt.Println() // New line after progress bar

	var photos []database.Photo
	var hashes []uint64
	for i, r := range results {
		if r == nil {
			result.Errors = append(result.Errors, fmt.Errorf("no result for file at index %d", i))
			continue
		}
		if r.err != nil {
			result.Errors = append(result.Errors, r.err)
			continue
		}
		photos = append(photos, r.photo)
		hashes = append(hashes, r.hash)
	}

	// Report likely duplicates within the batch
	for i := 0; i < len(photos); i++ {
		for j := i + 1; j < len(photos); j++ {
			if fingerprint.Similar(hashes[i], hashes[j], nearDuplicateThreshold) {
				result.Duplicates = append(result.Duplicates, DuplicatePair{
					FileA:    photos[i].SourcePath,
					FileB:    photos[j].SourcePath,
					Distance: fingerprint.HammingDistance(hashes[i], hashes[j]),
				})
			}
		}
	}

	if len(photos) > 0 {
		if err := writer.SavePhotos(ctx, photos); err != nil {
			return nil, fmt.Errorf("failed to save photos: %w", err)
		}
	}
	result.Imported = len(photos)

	return result, nil
}

// ImportGallery registers all photos of a PhotoPrism gallery database.
// Dimensions come from the gallery's file index, so no probing happens.
func ImportGallery(ctx context.Context, pool *mariadb.Pool, writer database.PhotoWriter) (int, error) {
	galleryPhotos, err := pool.GetGalleryPhotos(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch gallery photos: %w", err)
	}

	photos := make([]database.Photo, 0, len(galleryPhotos))
	for _, gp := range galleryPhotos {
		photos = append(photos, database.Photo{
			UID:      gp.UID,
			FileName: gp.FileName,
			Width:    gp.Width,
			Height:   gp.Height,
		})
	}

	if len(photos) > 0 {
		if err := writer.SavePhotos(ctx, photos); err != nil {
			return 0, fmt.Errorf("failed to save photos: %w", err)
		}
	}
	return len(photos), nil
}
