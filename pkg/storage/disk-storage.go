package storage

import (
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	"github.com/grochain/listing-finder/pkg/types"
)

const datasetFolder = "datasets"

var ErrNoDataset = errors.New("no dataset stored")

func datasetName(collection types.Collection) string {
	return path.Join(datasetFolder, string(collection)+".json.gz")
}

// LoadDataset reads the stored listings of a collection into output. Both
// "<collection>.json.gz" and a hand written "<collection>.json" are accepted.
func (d *DiskStorage) LoadDataset(collection types.Collection, output any) error {
	err := d.LoadGzippedJson(output, datasetName(collection))
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	err = d.LoadJson(output, path.Join(datasetFolder, string(collection)+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNoDataset
	}
	return err
}

func (d *DiskStorage) SaveDataset(collection types.Collection, data any) error {
	return d.SaveGzippedJson(data, datasetName(collection))
}

func (d *DiskStorage) writeFile(name string, write func(w io.Writer) error) error {
	fileName, tmpFileName := d.GetFileName(name)
	if err := os.MkdirAll(path.Dir(fileName), 0o755); err != nil {
		return err
	}
	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}
	err = write(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(tmpFileName); rmErr != nil {
			log.Printf("Failed to remove temp file %s: %v", tmpFileName, rmErr)
		}
		return err
	}
	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) SaveGzippedJson(data any, name string) error {
	return d.writeFile(name, func(w io.Writer) error {
		zipWriter := gzip.NewWriter(w)
		if err := jsoncompat.NewEncoder(zipWriter).Encode(data); err != nil {
			zipWriter.Close()
			return err
		}
		return zipWriter.Close()
	})
}

func (d *DiskStorage) LoadGzippedJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zipReader.Close()

	err = jsoncompat.NewDecoder(zipReader).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (d *DiskStorage) SaveJson(data any, name string) error {
	return d.writeFile(name, func(w io.Writer) error {
		return jsoncompat.NewEncoder(w).Encode(data)
	})
}

func (d *DiskStorage) LoadJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	err = jsoncompat.NewDecoder(file).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
